package repositories

import (
	"context"

	"corpsite.backend/internal/domain/entities"
)

type ContentRepository interface {
	ListActiveMOUs(ctx context.Context) ([]*entities.MOU, error)
	ListGallery(ctx context.Context) ([]*entities.GalleryImage, error)
	ListProjects(ctx context.Context) ([]*entities.Project, error)
	ListCommunity(ctx context.Context, section string) ([]*entities.CommunityItem, error)
}
