package scheduleRepo

import (
	"context"

	"github.com/rkritzar39/calebsportfolio-sub000/config"
	"github.com/rkritzar39/calebsportfolio-sub000/database"
	"github.com/rkritzar39/calebsportfolio-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository stores the single business-hours configuration
// document plus its holiday and temporary rule lists.
type ScheduleRepository interface {
	GetBusinessConfig(ctx context.Context) (*models.BusinessConfig, error)
	SaveBusinessConfig(ctx context.Context, cfg models.BusinessConfig) error
	SetOverride(ctx context.Context, override models.OverrideStatus) error

	AddHoliday(ctx context.Context, rule models.HolidayRule) (string, error)
	UpdateHoliday(ctx context.Context, rule models.HolidayRule) error
	DeleteHoliday(ctx context.Context, id string) error

	AddTemporary(ctx context.Context, rule models.TemporaryRule) (string, error)
	UpdateTemporary(ctx context.Context, rule models.TemporaryRule) error
	DeleteTemporary(ctx context.Context, id string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo returns a ScheduleRepository backed by MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoScheduleRepo{
		coll: db.Collection("business_config"),
	}
}
