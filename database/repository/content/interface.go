package contentRepo

import (
	"context"

	"github.com/rkritzar39/calebsportfolio-sub000/config"
	"github.com/rkritzar39/calebsportfolio-sub000/database"
	"github.com/rkritzar39/calebsportfolio-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContentRepository stores the site's published collections: shoutouts,
// links, the profile card, the legislation tracker and the settings doc.
type ContentRepository interface {
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

	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) error
}

type mongoContentRepo struct {
	shoutouts   *mongo.Collection
	links       *mongo.Collection
	profile     *mongo.Collection
	legislation *mongo.Collection
	settings    *mongo.Collection
}

// NewMongoContentRepo returns a ContentRepository backed by MongoDB.
func NewMongoContentRepo() ContentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoContentRepo{
		shoutouts:   db.Collection("shoutouts"),
		links:       db.Collection("links"),
		profile:     db.Collection("profile"),
		legislation: db.Collection("legislation"),
		settings:    db.Collection("settings"),
	}
}
