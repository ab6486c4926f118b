package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"corpsite.backend/internal/config"
)

var testDB = config.DatabaseConfig{
	Host: "127.0.0.1", Port: 1, User: "site", Password: "secret", DBName: "corpsite", SSLMode: "disable",
}

func stubPool(t *testing.T, pingErr error) {
	t.Helper()
	origOpen, origPing := sqlOpen, dbPing
	t.Cleanup(func() {
		sqlOpen, dbPing = origOpen, origPing
	})

	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		require.Equal(t, "postgres", driver)
		require.Equal(t, testDB.URL(), dsn)
		return origOpen(driver, dsn)
	}
	dbPing = func(*sql.DB) error { return pingErr }
}

func TestNewConnection_UnreachableServer(t *testing.T) {
	db, err := NewConnection(testDB)
	require.Nil(t, db)
	require.ErrorContains(t, err, "failed to ping database")
}

func TestNewConnection_OpenError(t *testing.T) {
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("unknown driver") }

	db, err := NewConnection(testDB)
	require.Nil(t, db)
	require.ErrorContains(t, err, "failed to open database")
	require.ErrorContains(t, err, "unknown driver")
}

func TestNewConnection_ConfiguresPool(t *testing.T) {
	stubPool(t, nil)

	db, err := NewConnection(testDB)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.Equal(t, 20, db.Stats().MaxOpenConnections)
}

func TestNewConnection_PingErrorClosesPool(t *testing.T) {
	stubPool(t, errors.New("password authentication failed"))

	db, err := NewConnection(testDB)
	require.Nil(t, db)
	require.ErrorContains(t, err, "password authentication failed")
}

func TestGormLogLevel(t *testing.T) {
	for env, want := range map[string]gormlogger.LogLevel{
		"development": gormlogger.Info,
		"production":  gormlogger.Warn,
		"staging":     gormlogger.Warn,
		"":            gormlogger.Warn,
	} {
		require.Equal(t, want, gormLogLevel(env), env)
	}
}

func TestNewGorm_WrapsPool(t *testing.T) {
	stubPool(t, nil)

	for _, env := range []string{"development", "production"} {
		db, err := NewConnection(testDB)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		gdb, err := NewGorm(db, env)
		require.NoError(t, err, env)
		pool, err := gdb.DB()
		require.NoError(t, err)
		require.Same(t, db, pool)
	}
}
