package repositories

import (
	"context"

	"gorm.io/gorm"

	"corpsite.backend/internal/domain/entities"
	"corpsite.backend/internal/infrastructure/models"
)

// ContentRepository reads the marketing tables. Rows are written by the CMS.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) ListActiveMOUs(ctx context.Context) ([]*entities.MOU, error) {
	var ms []models.MOU
	if err := GetDB(ctx, r.db).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.MOU, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.MOU{
			ID:           m.ID,
			Title:        m.Title,
			Organization: m.Organization,
			Description:  m.Description,
			LogoURL:      m.Logo,
			DocumentURL:  m.Document,
			SignedOn:     m.SignedOn,
			IsActive:     m.IsActive,
			CreatedAt:    m.CreatedAt,
		})
	}
	return items, nil
}

func (r *ContentRepository) ListGallery(ctx context.Context) ([]*entities.GalleryImage, error) {
	ms, err := listNewest[models.GalleryImage](ctx, r.db, "created_at")
	if err != nil {
		return nil, err
	}
	items := make([]*entities.GalleryImage, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.GalleryImage{
			ID:        m.ID,
			Title:     m.Title,
			ImageURL:  m.Image,
			Caption:   m.Caption,
			CreatedAt: m.CreatedAt,
		})
	}
	return items, nil
}

func (r *ContentRepository) ListProjects(ctx context.Context) ([]*entities.Project, error) {
	var ms []models.Project
	if err := GetDB(ctx, r.db).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Project, 0, len(ms))
	for _, m := range ms {
		tech := []string(m.Technologies)
		if tech == nil {
			tech = []string{}
		}
		items = append(items, &entities.Project{
			ID:           m.ID,
			Title:        m.Title,
			Description:  m.Description,
			ImageURL:     m.Image,
			Technologies: tech,
			Link:         m.Link,
			CreatedAt:    m.CreatedAt,
		})
	}
	return items, nil
}

func (r *ContentRepository) ListCommunity(ctx context.Context, section string) ([]*entities.CommunityItem, error) {
	var ms []models.CommunityItem
	if err := GetDB(ctx, r.db).
		Where("section = ?", section).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.CommunityItem, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.CommunityItem{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			ImageURL:    m.Image,
			Section:     m.Section,
			Link:        m.Link,
			CreatedAt:   m.CreatedAt,
		})
	}
	return items, nil
}
