package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainerrors "corpsite.backend/internal/domain/errors"
	"corpsite.backend/internal/domain/repositories"
	"corpsite.backend/internal/infrastructure/jobs"
	"corpsite.backend/internal/infrastructure/metrics"
	"corpsite.backend/internal/infrastructure/notifier"
	"corpsite.backend/pkg/logger"
)

// BindFunc decodes and validates the request payload into a form.
type BindFunc func(form any) error

// SubmissionForm is the validated payload of one kind.
type SubmissionForm[E any] interface {
	Entity() *E
}

// formValidator is implemented by forms with rules the binding tags cannot express.
type formValidator interface {
	Validate() *domainerrors.ValidationError
}

// NotificationQueue accepts notifications without blocking the caller.
type NotificationQueue interface {
	Enqueue(n jobs.Notification) bool
}

// WarningHook receives soft validation findings. It must not block.
type WarningHook func(ctx context.Context, kind string, warnings []string)

// LogWarnings is the default WarningHook.
func LogWarnings(ctx context.Context, kind string, warnings []string) {
	logger.Warn(ctx, "Submission accepted with warnings", zap.String("kind", kind), zap.Strings("warnings", warnings))
}

// SubmissionKind describes everything that differs between form-backed kinds.
type SubmissionKind[E any] struct {
	Name        string
	NewForm     func() SubmissionForm[E]
	Store       repositories.SubmissionRepository[E]
	Compose     func(ctx context.Context, record *E) (string, error)
	Destination notifier.Destination

	// Check reports soft findings on a valid record; it never rejects.
	Check func(record *E) []string
	// Attach stores side files for the record before it is written. The
	// returned rollback, if any, runs when the write fails.
	Attach func(ctx context.Context, form SubmissionForm[E], record *E) (func(), error)
	// Present fills read-time fields on listed records.
	Present func(record *E)
	// Identify returns the record id, used in logs.
	Identify func(record *E) uuid.UUID
}

// SubmissionPipeline runs validate, persist, notify for one kind. Notification
// is handed to the queue after the write and can never fail the submission.
type SubmissionPipeline[E any] struct {
	kind    SubmissionKind[E]
	queue   NotificationQueue
	metrics *metrics.Metrics
	warn    WarningHook
}

type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	warn WarningHook
}

// WithWarningHook replaces the default warning logger.
func WithWarningHook(h WarningHook) PipelineOption {
	return func(o *pipelineOptions) {
		if h != nil {
			o.warn = h
		}
	}
}

func NewSubmissionPipeline[E any](kind SubmissionKind[E], queue NotificationQueue, m *metrics.Metrics, opts ...PipelineOption) *SubmissionPipeline[E] {
	o := pipelineOptions{warn: LogWarnings}
	for _, opt := range opts {
		opt(&o)
	}
	return &SubmissionPipeline[E]{
		kind:    kind,
		queue:   queue,
		metrics: m,
		warn:    o.warn,
	}
}

// Kind returns the kind name.
func (p *SubmissionPipeline[E]) Kind() string {
	return p.kind.Name
}

// Submit validates the payload, persists it and schedules its notification.
// Errors are either *ValidationError (nothing stored) or a 500 *AppError.
func (p *SubmissionPipeline[E]) Submit(ctx context.Context, bind BindFunc) (*E, error) {
	ctx = logger.WithKind(ctx, p.kind.Name)

	form := p.kind.NewForm()
	if verr := validate(form, bind); !verr.Empty() {
		p.metrics.Submission(p.kind.Name, metrics.OutcomeRejected)
		return nil, verr
	}

	record := form.Entity()
	if p.kind.Check != nil {
		if warnings := p.kind.Check(record); len(warnings) > 0 {
			p.warn(ctx, p.kind.Name, warnings)
		}
	}

	var rollback func()
	if p.kind.Attach != nil {
		rb, err := p.kind.Attach(ctx, form, record)
		if err != nil {
			logger.Error(ctx, "Failed to store submission attachment", zap.Error(err))
			p.metrics.Submission(p.kind.Name, metrics.OutcomeFailed)
			return nil, domainerrors.PersistenceError(err)
		}
		rollback = rb
	}

	if err := p.kind.Store.Create(ctx, record); err != nil {
		if rollback != nil {
			rollback()
		}
		logger.Error(ctx, "Failed to persist submission", zap.Error(err))
		p.metrics.Submission(p.kind.Name, metrics.OutcomeFailed)
		return nil, domainerrors.PersistenceError(err)
	}
	p.metrics.Submission(p.kind.Name, metrics.OutcomeAccepted)

	if p.kind.Identify != nil {
		logger.Info(ctx, "Submission stored", zap.String("id", p.kind.Identify(record).String()))
	}

	if p.kind.Present != nil {
		p.kind.Present(record)
	}
	p.notify(ctx, record)
	return record, nil
}

// validate collects every failing field. A body that decoded, even in part,
// also gets the form's own checks.
func validate(form any, bind BindFunc) *domainerrors.ValidationError {
	verr := domainerrors.NewValidationError()
	if err := bind(form); err != nil {
		verr = translateBindError(err, form)
		if !partiallyBound(err) {
			return verr
		}
	}
	if v, ok := form.(formValidator); ok {
		verr.Merge(v.Validate())
	}
	return verr
}

func (p *SubmissionPipeline[E]) notify(ctx context.Context, record *E) {
	if p.queue == nil || p.kind.Compose == nil {
		return
	}
	compose := p.kind.Compose
	p.queue.Enqueue(jobs.Notification{
		Kind:        p.kind.Name,
		Destination: p.kind.Destination,
		RequestID:   logger.RequestID(ctx),
		Render: func(renderCtx context.Context) (string, error) {
			return compose(renderCtx, record)
		},
	})
}

// List returns every stored record, newest first.
func (p *SubmissionPipeline[E]) List(ctx context.Context) ([]*E, error) {
	records, err := p.kind.Store.List(ctx)
	if err != nil {
		logger.Error(logger.WithKind(ctx, p.kind.Name), "Failed to list submissions", zap.Error(err))
		return nil, domainerrors.InternalError(err)
	}
	if records == nil {
		records = []*E{}
	}
	if p.kind.Present != nil {
		for _, r := range records {
			p.kind.Present(r)
		}
	}
	return records, nil
}

// Delete removes one record. Removing a team removes its participants.
func (p *SubmissionPipeline[E]) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = logger.WithKind(ctx, p.kind.Name)
	if err := p.kind.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(p.kind.Name + " not found")
		}
		logger.Error(ctx, "Failed to delete submission", zap.String("id", id.String()), zap.Error(err))
		return domainerrors.InternalError(err)
	}
	logger.Info(ctx, "Submission deleted", zap.String("id", id.String()))
	return nil
}
