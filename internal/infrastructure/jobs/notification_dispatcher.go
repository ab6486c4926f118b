package jobs

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domainerrors "corpsite.backend/internal/domain/errors"
	"corpsite.backend/internal/infrastructure/metrics"
	"corpsite.backend/internal/infrastructure/notifier"
	"corpsite.backend/pkg/logger"
)

// Sender delivers one message to one destination.
type Sender interface {
	Send(ctx context.Context, dest notifier.Destination, text string) error
}

// Notification is a one-way message handed off by the submission path. When
// Render is set the text is built on the worker, after the caller has moved on.
type Notification struct {
	Kind        string
	Destination notifier.Destination
	Text        string
	Render      func(ctx context.Context) (string, error)
	RequestID   string
}

// NotificationDispatcher delivers notifications from a bounded in-memory queue
// on a fixed set of workers. Delivery is attempted once; failures are logged,
// counted and dropped. Nothing is persisted, so queued messages are lost if
// the process dies before a worker reaches them.
type NotificationDispatcher struct {
	sender   Sender
	metrics  *metrics.Metrics
	queue    chan Notification
	workers  int
	stop     chan struct{}
	stopOnce sync.Once
}

func NewNotificationDispatcher(sender Sender, m *metrics.Metrics, workers, queueSize int) *NotificationDispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &NotificationDispatcher{
		sender:  sender,
		metrics: m,
		queue:   make(chan Notification, queueSize),
		workers: workers,
		stop:    make(chan struct{}),
	}
}

// Enqueue never blocks. It reports whether n was queued; unconfigured
// destinations and a full queue both return false.
func (d *NotificationDispatcher) Enqueue(n Notification) bool {
	ctx := logContext(n)
	if !n.Destination.Configured() {
		logger.Debug(ctx, "Notification destination not configured, skipping")
		d.metrics.Notification(n.Kind, metrics.NotifySkipped)
		return false
	}

	select {
	case d.queue <- n:
		return true
	default:
		logger.Warn(ctx, "Notification queue full, dropping message", zap.Int("capacity", cap(d.queue)))
		d.metrics.Notification(n.Kind, metrics.NotifyDropped)
		return false
	}
}

// Start runs the workers and blocks until ctx is cancelled or Stop is called.
// On Stop the workers drain what is already queued before returning.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	logger.Info(ctx, "Starting notification dispatcher", zap.Int("workers", d.workers), zap.Int("queue", cap(d.queue)))

	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.run(ctx)
		}()
	}
	wg.Wait()

	logger.Info(ctx, "Notification dispatcher stopped")
}

func (d *NotificationDispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
}

func (d *NotificationDispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			d.drain(ctx)
			return
		case n := <-d.queue:
			d.deliver(ctx, n)
		}
	}
}

func (d *NotificationDispatcher) drain(ctx context.Context) {
	for {
		select {
		case n := <-d.queue:
			d.deliver(ctx, n)
		default:
			return
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, n Notification) {
	// A shutdown must not cut an in-flight delivery short; the sender's own
	// timeout bounds it.
	if err := d.attempt(context.WithoutCancel(ctx), n); err != nil {
		logger.Warn(logContext(n), "Notification delivery failed", zap.Error(err))
		d.metrics.Notification(n.Kind, metrics.NotifyFailed)
		return
	}
	d.metrics.Notification(n.Kind, metrics.NotifySent)
}

// attempt builds the text and sends it once. Every failure wraps ErrNotification.
func (d *NotificationDispatcher) attempt(ctx context.Context, n Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", domainerrors.ErrNotification, r)
		}
	}()

	text := n.Text
	if n.Render != nil {
		rendered, rerr := n.Render(ctx)
		if rerr != nil {
			return fmt.Errorf("%w: build text: %w", domainerrors.ErrNotification, rerr)
		}
		text = rendered
	}
	if serr := d.sender.Send(ctx, n.Destination, text); serr != nil {
		return fmt.Errorf("%w: %w", domainerrors.ErrNotification, serr)
	}
	return nil
}

func logContext(n Notification) context.Context {
	ctx := logger.WithKind(context.Background(), n.Kind)
	if n.RequestID != "" {
		ctx = context.WithValue(ctx, logger.RequestIDKey, n.RequestID)
	}
	return ctx
}
