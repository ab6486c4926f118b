package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	domainerrors "corpsite.backend/internal/domain/errors"
	"corpsite.backend/internal/infrastructure/metrics"
	"corpsite.backend/internal/infrastructure/notifier"
)

type senderStub struct {
	mu    sync.Mutex
	sent  []Notification
	err   error
	block chan struct{}
}

func (s *senderStub) Send(_ context.Context, dest notifier.Destination, text string) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, Notification{Destination: dest, Text: text})
	return s.err
}

func (s *senderStub) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

var dest = notifier.Destination{Token: "tok", ChatID: "chat"}

func TestEnqueue_SkipsUnconfiguredDestination(t *testing.T) {
	m := metrics.New()
	d := NewNotificationDispatcher(&senderStub{}, m, 1, 1)

	require.False(t, d.Enqueue(Notification{Kind: "contact", Destination: notifier.Destination{Token: "tok"}, Text: "x"}))
	require.Equal(t, 0, len(d.queue))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("contact", metrics.NotifySkipped)))
}

func TestEnqueue_DropsWhenFull(t *testing.T) {
	m := metrics.New()
	d := NewNotificationDispatcher(&senderStub{}, m, 1, 1)

	require.True(t, d.Enqueue(Notification{Kind: "contact", Destination: dest, Text: "first"}))
	require.False(t, d.Enqueue(Notification{Kind: "contact", Destination: dest, Text: "second"}))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("contact", metrics.NotifyDropped)))
}

func TestDispatcher_DeliversAndCounts(t *testing.T) {
	m := metrics.New()
	sender := &senderStub{}
	d := NewNotificationDispatcher(sender, m, 2, 8)

	done := make(chan struct{})
	go func() {
		d.Start(context.Background())
		close(done)
	}()

	for i := 0; i < 3; i++ {
		require.True(t, d.Enqueue(Notification{Kind: "inquiry", Destination: dest, Text: "hello", RequestID: "req"}))
	}
	require.Eventually(t, func() bool { return sender.count() == 3 }, time.Second, 5*time.Millisecond)

	d.Stop()
	d.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on Stop()")
	}
	require.Equal(t, 3.0, testutil.ToFloat64(m.Notifications.WithLabelValues("inquiry", metrics.NotifySent)))
}

func TestDispatcher_FailuresAreSwallowed(t *testing.T) {
	m := metrics.New()
	sender := &senderStub{err: errors.New("telegram down")}
	d := NewNotificationDispatcher(sender, m, 1, 4)

	require.True(t, d.Enqueue(Notification{Kind: "hackathon", Destination: dest, Text: "x"}))
	d.Stop()
	d.Start(context.Background())

	require.Equal(t, 1, sender.count())
	require.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("hackathon", metrics.NotifyFailed)))
}

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	sender := &senderStub{}
	d := NewNotificationDispatcher(sender, nil, 1, 4)

	for i := 0; i < 4; i++ {
		require.True(t, d.Enqueue(Notification{Kind: "contact", Destination: dest, Text: "x"}))
	}
	d.Stop()
	d.Start(context.Background())
	require.Equal(t, 4, sender.count())
}

func TestDispatcher_StopsByContext(t *testing.T) {
	d := NewNotificationDispatcher(&senderStub{}, nil, 0, 0)
	require.Equal(t, 1, d.workers)
	require.Equal(t, 1, cap(d.queue))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("dispatcher did not stop on context cancel")
	}
}

func TestEnqueue_DoesNotWaitForSlowSender(t *testing.T) {
	sender := &senderStub{block: make(chan struct{})}
	d := NewNotificationDispatcher(sender, nil, 1, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Start(ctx)

	start := time.Now()
	require.True(t, d.Enqueue(Notification{Kind: "contact", Destination: dest, Text: "x"}))
	require.Less(t, time.Since(start), 100*time.Millisecond)
	close(sender.block)
	require.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestDispatcher_RendersOnWorker(t *testing.T) {
	m := metrics.New()
	sender := &senderStub{}
	d := NewNotificationDispatcher(sender, m, 1, 4)

	require.True(t, d.Enqueue(Notification{Kind: "hackathon", Destination: dest, Render: func(context.Context) (string, error) {
		return "rendered", nil
	}}))
	require.True(t, d.Enqueue(Notification{Kind: "hackathon", Destination: dest, Render: func(context.Context) (string, error) {
		return "", errors.New("read back failed")
	}}))
	require.True(t, d.Enqueue(Notification{Kind: "hackathon", Destination: dest, Render: func(context.Context) (string, error) {
		panic("template bug")
	}}))
	d.Stop()
	d.Start(context.Background())

	require.Equal(t, 1, sender.count())
	require.Equal(t, "rendered", sender.sent[0].Text)
	require.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("hackathon", metrics.NotifySent)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Notifications.WithLabelValues("hackathon", metrics.NotifyFailed)))
}

func TestAttempt_WrapsFailuresAsNotificationErrors(t *testing.T) {
	cause := errors.New("telegram responded 401")
	d := NewNotificationDispatcher(&senderStub{err: cause}, nil, 1, 1)

	err := d.attempt(context.Background(), Notification{Kind: "contact", Destination: dest, Text: "x"})
	require.ErrorIs(t, err, domainerrors.ErrNotification)
	require.ErrorIs(t, err, cause)

	err = d.attempt(context.Background(), Notification{Kind: "contact", Destination: dest, Render: func(context.Context) (string, error) {
		return "", errors.New("read back failed")
	}})
	require.ErrorIs(t, err, domainerrors.ErrNotification)
	require.ErrorContains(t, err, "build text")

	err = d.attempt(context.Background(), Notification{Kind: "contact", Destination: dest, Render: func(context.Context) (string, error) {
		panic("template bug")
	}})
	require.ErrorIs(t, err, domainerrors.ErrNotification)
	require.ErrorContains(t, err, "template bug")

	ok := NewNotificationDispatcher(&senderStub{}, nil, 1, 1)
	require.NoError(t, ok.attempt(context.Background(), Notification{Kind: "contact", Destination: dest, Text: "x"}))
}
