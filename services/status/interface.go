package status

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	scheduleRepo "github.com/rkritzar39/calebsportfolio-sub000/database/repository/schedule"
	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

// StatusService is the impure shell around the resolver: it fetches the
// schedule snapshot, detects zones and hands back render-ready output.
type StatusService interface {
	GetStatusPage(ctx context.Context, visitorTZ string) (*models.StatusPage, error)
	GetWeeklyHours(ctx context.Context, visitorTZ string) ([]models.DayHours, error)
	CurrentStatus(ctx context.Context) (models.ResolvedStatus, error)
	Invalidate(ctx context.Context)
}

// DefaultStatusService is the production implementation.
type DefaultStatusService struct {
	Repo  scheduleRepo.ScheduleRepository
	Cache *redis.Client

	// Clock overrides time.Now in tests.
	Clock func() time.Time
}
