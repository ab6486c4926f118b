package repositories

import (
	"context"

	"github.com/google/uuid"

	"corpsite.backend/internal/domain/entities"
)

// SubmissionRepository is the store contract shared by every form-backed kind.
// Create assigns identity and timestamp; List returns newest first; Delete
// returns errors.ErrNotFound when no row matched.
type SubmissionRepository[E any] interface {
	Create(ctx context.Context, record *E) error
	List(ctx context.Context) ([]*E, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicationRepository interface {
	SubmissionRepository[entities.Application]
}

type ContactMessageRepository interface {
	SubmissionRepository[entities.ContactMessage]
}

type InquiryRepository interface {
	SubmissionRepository[entities.Inquiry]
}

type HackathonRepository interface {
	SubmissionRepository[entities.HackathonTeam]
	// ParticipantsOf returns a team's participants with the given role in submission order.
	ParticipantsOf(ctx context.Context, teamID uuid.UUID, role entities.ParticipantRole) ([]*entities.HackathonParticipant, error)
}
