package contentRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rkritzar39/calebsportfolio-sub000/models"
)

var ErrNotFound = errors.New("content record not found")

const (
	profileDocID  = "profile"
	settingsDocID = "settings"
)

// ListShoutouts returns shoutouts ordered for display, optionally
// filtered by platform.
func (r *mongoContentRepo) ListShoutouts(ctx context.Context, platform string) ([]models.Shoutout, error) {
	filter := bson.M{}
	if platform != "" {
		filter["platform"] = platform
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "username", Value: 1}})
	cursor, err := r.shoutouts.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Shoutout
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContentRepo) CreateShoutout(ctx context.Context, s models.Shoutout) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	if _, err := r.shoutouts.InsertOne(ctx, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

func (r *mongoContentRepo) UpdateShoutout(ctx context.Context, s models.Shoutout) error {
	s.UpdatedAt = time.Now().UTC()
	res, err := r.shoutouts.ReplaceOne(ctx, bson.M{"id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoContentRepo) DeleteShoutout(ctx context.Context, id string) error {
	res, err := r.shoutouts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLinks returns the links list in display order.
func (r *mongoContentRepo) ListLinks(ctx context.Context) ([]models.SocialLink, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "label", Value: 1}})
	cursor, err := r.links.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.SocialLink
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContentRepo) CreateLink(ctx context.Context, l models.SocialLink) (string, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	l.CreatedAt = time.Now().UTC()
	l.UpdatedAt = l.CreatedAt
	if _, err := r.links.InsertOne(ctx, l); err != nil {
		return "", err
	}
	return l.ID, nil
}

func (r *mongoContentRepo) UpdateLink(ctx context.Context, l models.SocialLink) error {
	l.UpdatedAt = time.Now().UTC()
	res, err := r.links.ReplaceOne(ctx, bson.M{"id": l.ID}, l)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoContentRepo) DeleteLink(ctx context.Context, id string) error {
	res, err := r.links.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProfile returns the profile card; a missing document yields an
// empty profile rather than an error.
func (r *mongoContentRepo) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	err := r.profile.FindOne(ctx, bson.M{"_id": profileDocID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.Profile{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoContentRepo) SaveProfile(ctx context.Context, p models.Profile) error {
	p.UpdatedAt = time.Now().UTC()
	doc := bson.M{
		"_id":       profileDocID,
		"username":  p.Username,
		"bio":       p.Bio,
		"imageUrl":  p.ImageURL,
		"status":    p.Status,
		"updatedAt": p.UpdatedAt,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.profile.ReplaceOne(ctx, bson.M{"_id": profileDocID}, doc, opts)
	return err
}

// ListLegislation returns tracked bills, most recently updated first.
func (r *mongoContentRepo) ListLegislation(ctx context.Context) ([]models.LegislationItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.legislation.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.LegislationItem
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContentRepo) CreateLegislation(ctx context.Context, item models.LegislationItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.UpdatedAt = time.Now().UTC()
	if _, err := r.legislation.InsertOne(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (r *mongoContentRepo) UpdateLegislation(ctx context.Context, item models.LegislationItem) error {
	item.UpdatedAt = time.Now().UTC()
	res, err := r.legislation.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoContentRepo) DeleteLegislation(ctx context.Context, id string) error {
	res, err := r.legislation.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSettings returns the feature flag record, defaulting when unset.
func (r *mongoContentRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := r.settings.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		def := models.DefaultSettings()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoContentRepo) SaveSettings(ctx context.Context, s models.Settings) error {
	s.UpdatedAt = time.Now().UTC()
	doc := bson.M{
		"_id":               settingsDocID,
		"darkMode":          s.DarkMode,
		"maintenanceBanner": s.MaintenanceBanner,
		"showShoutouts":     s.ShowShoutouts,
		"showLegislation":   s.ShowLegislation,
		"showBusinessHours": s.ShowBusinessHours,
		"focusOutlines":     s.FocusOutlines,
		"updatedAt":         s.UpdatedAt,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.settings.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts)
	return err
}
