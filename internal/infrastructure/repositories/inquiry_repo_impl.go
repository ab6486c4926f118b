package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"corpsite.backend/internal/domain/entities"
	"corpsite.backend/internal/infrastructure/models"
	"corpsite.backend/pkg/utils"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *entities.Inquiry) error {
	if inq.ID == uuid.Nil {
		inq.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(inq)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	inq.CreatedAt = m.CreatedAt
	return nil
}

func (r *InquiryRepository) List(ctx context.Context) ([]*entities.Inquiry, error) {
	ms, err := listNewest[models.Inquiry](ctx, r.db, "created_at")
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Inquiry, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Inquiry](ctx, r.db, id)
}

func (r *InquiryRepository) toEntity(m *models.Inquiry) *entities.Inquiry {
	return &entities.Inquiry{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		CPUModel:  m.CPUModel,
		Quantity:  m.Quantity,
		RAM:       m.RAM,
		Storage:   m.Storage,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func (r *InquiryRepository) toModel(e *entities.Inquiry) *models.Inquiry {
	return &models.Inquiry{
		ID:        e.ID,
		FullName:  e.FullName,
		Email:     e.Email,
		Phone:     e.Phone,
		CPUModel:  e.CPUModel,
		Quantity:  e.Quantity,
		RAM:       e.RAM,
		Storage:   e.Storage,
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
	}
}
