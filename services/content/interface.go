package content

import (
	"context"

	contentRepo "github.com/rkritzar39/calebsportfolio-sub000/database/repository/content"
	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

// ContentService manages the site's published collections.
type ContentService interface {
	ListShoutouts(ctx context.Context, platform string) ([]models.Shoutout, error)
	CreateShoutout(ctx context.Context, s models.Shoutout) (string, error)
	UpdateShoutout(ctx context.Context, s models.Shoutout) error
	DeleteShoutout(ctx context.Context, id string) error

	ListLinks(ctx context.Context) ([]models.SocialLink, error)
	CreateLink(ctx context.Context, l models.SocialLink) (string, error)
	UpdateLink(ctx context.Context, l models.SocialLink) error
	DeleteLink(ctx context.Context, id string) error

	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, p models.Profile) error

	ListLegislation(ctx context.Context) ([]models.LegislationItem, error)
	CreateLegislation(ctx context.Context, item models.LegislationItem) (string, error)
	UpdateLegislation(ctx context.Context, item models.LegislationItem) error
	DeleteLegislation(ctx context.Context, id string) error
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
}
