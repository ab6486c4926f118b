package usecases

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"corpsite.backend/internal/domain/entities"
	"corpsite.backend/internal/domain/repositories"
	"corpsite.backend/internal/infrastructure/metrics"
	"corpsite.backend/internal/infrastructure/notifier"
	"corpsite.backend/pkg/logger"
)

// Kind names, used as metric labels and in log lines.
const (
	KindApplication = "application"
	KindContact     = "contact"
	KindInquiry     = "inquiry"
	KindHackathon   = "hackathon"
)

const resumeDir = "resumes"

// MediaStore keeps uploaded files and turns stored names into public URLs.
type MediaStore interface {
	Save(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
	Remove(name string) error
	URL(name string) string
}

func NewApplicationPipeline(
	repo repositories.ApplicationRepository,
	media MediaStore,
	dest notifier.Destination,
	queue NotificationQueue,
	m *metrics.Metrics,
	opts ...PipelineOption,
) *SubmissionPipeline[entities.Application] {
	return NewSubmissionPipeline(SubmissionKind[entities.Application]{
		Name:        KindApplication,
		NewForm:     func() SubmissionForm[entities.Application] { return &ApplicationForm{} },
		Store:       repo,
		Destination: dest,
		Compose: func(_ context.Context, a *entities.Application) (string, error) {
			return applicationText(a, a.ResumeURL.String), nil
		},
		Attach: func(ctx context.Context, form SubmissionForm[entities.Application], a *entities.Application) (func(), error) {
			f, ok := form.(*ApplicationForm)
			if !ok || f.Resume == nil {
				return nil, nil
			}
			name, err := media.Save(ctx, resumeDir, f.Resume)
			if err != nil {
				return nil, fmt.Errorf("save resume: %w", err)
			}
			a.ResumePath.SetValid(name)
			return func() {
				if err := media.Remove(name); err != nil {
					logger.Warn(ctx, "Failed to remove orphaned resume", zap.String("path", name), zap.Error(err))
				}
			}, nil
		},
		Present: func(a *entities.Application) {
			if a.ResumePath.Valid && a.ResumePath.String != "" {
				a.ResumeURL.SetValid(media.URL(a.ResumePath.String))
			}
		},
		Identify: func(a *entities.Application) uuid.UUID { return a.ID },
	}, queue, m, opts...)
}

func NewContactPipeline(
	repo repositories.ContactMessageRepository,
	dest notifier.Destination,
	queue NotificationQueue,
	m *metrics.Metrics,
	opts ...PipelineOption,
) *SubmissionPipeline[entities.ContactMessage] {
	return NewSubmissionPipeline(SubmissionKind[entities.ContactMessage]{
		Name:        KindContact,
		NewForm:     func() SubmissionForm[entities.ContactMessage] { return &ContactForm{} },
		Store:       repo,
		Destination: dest,
		Compose: func(_ context.Context, c *entities.ContactMessage) (string, error) {
			return contactText(c), nil
		},
		Identify: func(c *entities.ContactMessage) uuid.UUID { return c.ID },
	}, queue, m, opts...)
}

func NewInquiryPipeline(
	repo repositories.InquiryRepository,
	dest notifier.Destination,
	queue NotificationQueue,
	m *metrics.Metrics,
	opts ...PipelineOption,
) *SubmissionPipeline[entities.Inquiry] {
	return NewSubmissionPipeline(SubmissionKind[entities.Inquiry]{
		Name:        KindInquiry,
		NewForm:     func() SubmissionForm[entities.Inquiry] { return &InquiryForm{} },
		Store:       repo,
		Destination: dest,
		Compose: func(_ context.Context, q *entities.Inquiry) (string, error) {
			return inquiryText(q), nil
		},
		Identify: func(q *entities.Inquiry) uuid.UUID { return q.ID },
	}, queue, m, opts...)
}

// NewHackathonPipeline composes its message from the stored participants, so
// the text reflects what was written rather than what was posted.
func NewHackathonPipeline(
	repo repositories.HackathonRepository,
	dest notifier.Destination,
	queue NotificationQueue,
	m *metrics.Metrics,
	opts ...PipelineOption,
) *SubmissionPipeline[entities.HackathonTeam] {
	return NewSubmissionPipeline(SubmissionKind[entities.HackathonTeam]{
		Name:        KindHackathon,
		NewForm:     func() SubmissionForm[entities.HackathonTeam] { return &HackathonForm{} },
		Store:       repo,
		Destination: dest,
		Check:       teamWarnings,
		Compose: func(ctx context.Context, team *entities.HackathonTeam) (string, error) {
			leaders, err := repo.ParticipantsOf(ctx, team.ID, entities.ParticipantRoleLeader)
			if err != nil {
				return "", fmt.Errorf("load leader: %w", err)
			}
			members, err := repo.ParticipantsOf(ctx, team.ID, entities.ParticipantRoleMember)
			if err != nil {
				return "", fmt.Errorf("load members: %w", err)
			}
			var leader *entities.HackathonParticipant
			if len(leaders) > 0 {
				leader = leaders[0]
			}
			return hackathonText(team, leader, members), nil
		},
		Identify: func(t *entities.HackathonTeam) uuid.UUID { return t.ID },
	}, queue, m, opts...)
}

// teamWarnings flags registrations that are accepted but look inconsistent.
func teamWarnings(team *entities.HackathonTeam) []string {
	var warnings []string
	if team.TotalParticipants != len(team.Participants) {
		warnings = append(warnings, fmt.Sprintf("total_participants is %d but %d participants were submitted",
			team.TotalParticipants, len(team.Participants)))
	}

	leaders := 0
	for _, p := range team.Participants {
		if p.Role == entities.ParticipantRoleLeader {
			leaders++
		}
	}
	if leaders != 1 {
		warnings = append(warnings, fmt.Sprintf("expected exactly one LEADER, got %d", leaders))
	}
	return warnings
}
