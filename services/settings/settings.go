// Package settings manages the site-wide feature flags: an immutable
// record with a fixed key set, persisted whole and broadcast to every
// subscriber on change. Admin tabs stay in sync by listening on the
// Redis channel rather than mutating shared state directly.
package settings

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	contentRepo "github.com/rkritzar39/calebsportfolio-sub000/database/repository/content"
	"github.com/rkritzar39/calebsportfolio-sub000/models"
	"github.com/rkritzar39/calebsportfolio-sub000/utils"
)

// SettingsService reads and replaces the feature flag record.
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, s models.Settings) error
	Subscribe(fn func(models.Settings)) (unsubscribe func())
}

// DefaultSettingsService is the production implementation.
type DefaultSettingsService struct {
	Repo   contentRepo.ContentRepository
	Broker *redis.Client

	mu     sync.Mutex
	nextID int
	subs   map[int]func(models.Settings)
}

// NewDefaultSettingsService wires the service and, when a broker is
// configured, starts the background listener that fans remote updates
// out to local subscribers.
func NewDefaultSettingsService(repo contentRepo.ContentRepository, broker *redis.Client) *DefaultSettingsService {
	svc := &DefaultSettingsService{
		Repo:   repo,
		Broker: broker,
		subs:   make(map[int]func(models.Settings)),
	}
	if broker != nil {
		go svc.listen(context.Background())
	}
	return svc
}

// Get returns the current record, defaulting when nothing was saved yet.
func (s *DefaultSettingsService) Get(ctx context.Context) (models.Settings, error) {
	stored, err := s.Repo.GetSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	return *stored, nil
}

// Save persists the full record and publishes the new snapshot.
// Subscribers always receive a whole record, never a diff.
func (s *DefaultSettingsService) Save(ctx context.Context, record models.Settings) error {
	if err := s.Repo.SaveSettings(ctx, record); err != nil {
		return err
	}
	if s.Broker != nil {
		raw, err := json.Marshal(record)
		if err == nil {
			err = s.Broker.Publish(ctx, utils.SettingsChannel, raw).Err()
		}
		if err != nil {
			zap.L().Warn("failed to broadcast settings update", zap.Error(err))
		}
	} else {
		s.fanOut(record)
	}
	return nil
}

// Subscribe registers an in-process listener and returns its remover.
func (s *DefaultSettingsService) Subscribe(fn func(models.Settings)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *DefaultSettingsService) fanOut(record models.Settings) {
	s.mu.Lock()
	listeners := make([]func(models.Settings), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(record)
	}
}

// listen relays channel messages to local subscribers.
func (s *DefaultSettingsService) listen(ctx context.Context) {
	sub := s.Broker.Subscribe(ctx, utils.SettingsChannel)
	defer sub.Close()

	for msg := range sub.Channel() {
		var record models.Settings
		if err := json.Unmarshal([]byte(msg.Payload), &record); err != nil {
			zap.L().Warn("discarding malformed settings broadcast", zap.Error(err))
			continue
		}
		s.fanOut(record)
	}
}
