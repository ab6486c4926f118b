package usecases

import (
	"context"

	"go.uber.org/zap"

	"corpsite.backend/internal/domain/entities"
	domainerrors "corpsite.backend/internal/domain/errors"
	"corpsite.backend/internal/domain/repositories"
	"corpsite.backend/pkg/logger"
)

// URLResolver turns a stored media name into a public URL.
type URLResolver interface {
	URL(name string) string
}

// ContentUsecase serves the read-only marketing listings.
type ContentUsecase struct {
	contentRepo repositories.ContentRepository
	media       URLResolver
}

func NewContentUsecase(contentRepo repositories.ContentRepository, media URLResolver) *ContentUsecase {
	return &ContentUsecase{contentRepo: contentRepo, media: media}
}

// ListMOUs returns active MOUs only.
func (u *ContentUsecase) ListMOUs(ctx context.Context) ([]*entities.MOU, error) {
	items, err := u.contentRepo.ListActiveMOUs(ctx)
	if err != nil {
		return nil, u.fail(ctx, "mous", err)
	}
	if items == nil {
		items = []*entities.MOU{}
	}
	for _, m := range items {
		if m.LogoURL.Valid {
			m.LogoURL.SetValid(u.media.URL(m.LogoURL.String))
		}
		if m.DocumentURL.Valid {
			m.DocumentURL.SetValid(u.media.URL(m.DocumentURL.String))
		}
	}
	return items, nil
}

// ListGallery returns images newest first with absolute image URLs.
func (u *ContentUsecase) ListGallery(ctx context.Context) ([]*entities.GalleryImage, error) {
	items, err := u.contentRepo.ListGallery(ctx)
	if err != nil {
		return nil, u.fail(ctx, "gallery", err)
	}
	if items == nil {
		items = []*entities.GalleryImage{}
	}
	for _, g := range items {
		g.ImageURL = u.media.URL(g.ImageURL)
	}
	return items, nil
}

func (u *ContentUsecase) ListProjects(ctx context.Context) ([]*entities.Project, error) {
	items, err := u.contentRepo.ListProjects(ctx)
	if err != nil {
		return nil, u.fail(ctx, "projects", err)
	}
	if items == nil {
		items = []*entities.Project{}
	}
	for _, p := range items {
		if p.ImageURL.Valid {
			p.ImageURL.SetValid(u.media.URL(p.ImageURL.String))
		}
	}
	return items, nil
}

// ListGiveback returns the community items of the giveback section, newest first.
func (u *ContentUsecase) ListGiveback(ctx context.Context) ([]*entities.CommunityItem, error) {
	items, err := u.contentRepo.ListCommunity(ctx, entities.CommunitySectionGiveback)
	if err != nil {
		return nil, u.fail(ctx, "giveback", err)
	}
	if items == nil {
		items = []*entities.CommunityItem{}
	}
	for _, c := range items {
		if c.ImageURL.Valid {
			c.ImageURL.SetValid(u.media.URL(c.ImageURL.String))
		}
	}
	return items, nil
}

func (u *ContentUsecase) fail(ctx context.Context, listing string, err error) error {
	logger.Error(ctx, "Failed to list content", zap.String("listing", listing), zap.Error(err))
	return domainerrors.InternalError(err)
}
