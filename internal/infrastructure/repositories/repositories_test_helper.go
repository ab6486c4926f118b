package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE career_applications (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		college TEXT NOT NULL,
		cgpa REAL NOT NULL,
		year_of_passing INTEGER NOT NULL,
		experience TEXT NOT NULL,
		skills TEXT NOT NULL,
		resume TEXT,
		applied_at DATETIME
	);`)
}

func createContactMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contact_messages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createInquiryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE cpu_inquiries (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		cpu_model TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		ram TEXT,
		storage TEXT,
		message TEXT,
		created_at DATETIME
	);`)
}

func createHackathonTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE hackathon_teams (
		id TEXT PRIMARY KEY,
		team_name TEXT NOT NULL,
		total_participants INTEGER NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE hackathon_participants (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		branch TEXT,
		section TEXT,
		year TEXT,
		role TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createContentTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE mous (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		organization TEXT NOT NULL,
		description TEXT,
		logo TEXT,
		document TEXT,
		signed_on DATETIME,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE gallery_images (
		id TEXT PRIMARY KEY,
		title TEXT,
		image TEXT NOT NULL,
		caption TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		image TEXT,
		technologies TEXT,
		link TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE community_items (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		image TEXT,
		section TEXT NOT NULL,
		link TEXT,
		created_at DATETIME
	);`)
}
