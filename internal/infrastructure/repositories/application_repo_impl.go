package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"corpsite.backend/internal/domain/entities"
	"corpsite.backend/internal/infrastructure/models"
	"corpsite.backend/pkg/utils"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entities.Application) error {
	if app.ID == uuid.Nil {
		app.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(app)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	app.AppliedAt = m.AppliedAt
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]*entities.Application, error) {
	ms, err := listNewest[models.Application](ctx, r.db, "applied_at")
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Application, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Application](ctx, r.db, id)
}

func (r *ApplicationRepository) toEntity(m *models.Application) *entities.Application {
	return &entities.Application{
		ID:            m.ID,
		FullName:      m.FullName,
		Email:         m.Email,
		Phone:         m.Phone,
		College:       m.College,
		CGPA:          m.CGPA,
		YearOfPassing: m.YearOfPassing,
		Experience:    m.Experience,
		Skills:        m.Skills,
		ResumePath:    m.Resume,
		AppliedAt:     m.AppliedAt,
	}
}

func (r *ApplicationRepository) toModel(e *entities.Application) *models.Application {
	return &models.Application{
		ID:            e.ID,
		FullName:      e.FullName,
		Email:         e.Email,
		Phone:         e.Phone,
		College:       e.College,
		CGPA:          e.CGPA,
		YearOfPassing: e.YearOfPassing,
		Experience:    e.Experience,
		Skills:        e.Skills,
		Resume:        e.ResumePath,
		AppliedAt:     e.AppliedAt,
	}
}
