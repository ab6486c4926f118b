package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"corpsite.backend/internal/domain/entities"
	"corpsite.backend/internal/infrastructure/models"
	"corpsite.backend/pkg/utils"
)

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Create(ctx context.Context, msg *entities.ContactMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = utils.GenerateUUIDv7()
	}
	m := &models.ContactMessage{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	msg.CreatedAt = m.CreatedAt
	return nil
}

func (r *ContactMessageRepository) List(ctx context.Context) ([]*entities.ContactMessage, error) {
	ms, err := listNewest[models.ContactMessage](ctx, r.db, "created_at")
	if err != nil {
		return nil, err
	}
	items := make([]*entities.ContactMessage, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.ContactMessage{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Subject:   m.Subject,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return items, nil
}

func (r *ContactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.ContactMessage](ctx, r.db, id)
}
