package status

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/rkritzar39/calebsportfolio-sub000/config"
	"github.com/rkritzar39/calebsportfolio-sub000/models"
	"github.com/rkritzar39/calebsportfolio-sub000/utils"
)

func (s *DefaultStatusService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// GetStatusPage resolves the current status and builds the full public
// payload: status, localized weekly hours and both upcoming lists.
func (s *DefaultStatusService) GetStatusPage(ctx context.Context, visitorTZ string) (*models.StatusPage, error) {
	cfg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	bizZone := s.businessZone(cfg)
	visitorZone := visitorZone(visitorTZ, bizZone)

	page := &models.StatusPage{
		Status:            Resolve(*cfg, now, bizZone, visitorZone),
		WeeklyHours:       WeeklyHours(*cfg, now, bizZone, visitorZone),
		UpcomingHolidays:  UpcomingHolidays(*cfg, now, bizZone, visitorZone),
		UpcomingTemporary: UpcomingTemporaries(*cfg, now, bizZone, visitorZone),
		Timezone:          bizZone.String(),
	}
	return page, nil
}

// GetWeeklyHours returns only the visitor-localized hours listing.
func (s *DefaultStatusService) GetWeeklyHours(ctx context.Context, visitorTZ string) ([]models.DayHours, error) {
	cfg, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	bizZone := s.businessZone(cfg)
	return WeeklyHours(*cfg, s.now(), bizZone, visitorZone(visitorTZ, bizZone)), nil
}

// CurrentStatus resolves against the business zone only. Used by the
// refresh worker, which has no visitor.
func (s *DefaultStatusService) CurrentStatus(ctx context.Context) (models.ResolvedStatus, error) {
	cfg, err := s.snapshot(ctx)
	if err != nil {
		return models.ResolvedStatus{}, err
	}
	bizZone := s.businessZone(cfg)
	return Resolve(*cfg, s.now(), bizZone, bizZone), nil
}

// Invalidate drops the cached snapshot after an admin write.
func (s *DefaultStatusService) Invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.ScheduleSnapshotKey).Err(); err != nil {
		zap.L().Warn("failed to invalidate schedule snapshot cache", zap.Error(err))
	}
}

// snapshot returns the schedule config, preferring the short-TTL Redis
// cache over a repository read. Cache failures are non-fatal.
func (s *DefaultStatusService) snapshot(ctx context.Context) (*models.BusinessConfig, error) {
	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, utils.ScheduleSnapshotKey).Bytes()
		if err == nil {
			var cfg models.BusinessConfig
			if err := json.Unmarshal(raw, &cfg); err == nil {
				return &cfg, nil
			}
			zap.L().Warn("discarding corrupt schedule snapshot cache entry")
		}
	}

	cfg, err := s.Repo.GetBusinessConfig(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(cfg); err == nil {
			if err := s.Cache.Set(ctx, utils.ScheduleSnapshotKey, raw, utils.ScheduleSnapshotTTL).Err(); err != nil {
				zap.L().Debug("failed to cache schedule snapshot", zap.Error(err))
			}
		}
	}
	return cfg, nil
}

// businessZone loads the fixed home timezone, preferring a per-config
// override. Load failure degrades to UTC rather than failing resolution.
func (s *DefaultStatusService) businessZone(cfg *models.BusinessConfig) *time.Location {
	name := cfg.Timezone
	if name == "" {
		name = config.AppConfig.BusinessTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		zap.L().Warn("failed to load business timezone, falling back to UTC",
			zap.String("timezone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

// visitorZone resolves the visitor's display zone. Absent input means
// "format in business time"; an unloadable zone returns nil so the
// formatter can label the output as degraded.
func visitorZone(tz string, bizZone *time.Location) *time.Location {
	if tz == "" {
		return bizZone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		zap.L().Warn("failed to load visitor timezone", zap.String("timezone", tz), zap.Error(err))
		return nil
	}
	return loc
}
