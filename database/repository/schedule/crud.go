package scheduleRepo

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

// configDocID is the fixed key of the single business configuration document.
const configDocID = "business"

var (
	ErrRuleNotFound = errors.New("schedule rule not found")
)

// GetBusinessConfig returns the schedule snapshot. A missing document is
// not an error: callers get an empty config with the override set to auto.
func (r *mongoScheduleRepo) GetBusinessConfig(ctx context.Context) (*models.BusinessConfig, error) {
	var cfg models.BusinessConfig
	err := r.coll.FindOne(ctx, bson.M{"_id": configDocID}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		cfg = models.BusinessConfig{StatusOverride: models.OverrideAuto}
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// SaveBusinessConfig replaces the whole configuration document.
func (r *mongoScheduleRepo) SaveBusinessConfig(ctx context.Context, cfg models.BusinessConfig) error {
	cfg.Normalize()
	cfg.UpdatedAt = time.Now().UTC()

	doc := bson.M{
		"_id":            configDocID,
		"regularHours":   cfg.RegularHours,
		"holidayHours":   cfg.HolidayHours,
		"temporaryHours": cfg.TemporaryHours,
		"statusOverride": cfg.StatusOverride,
		"timezone":       cfg.Timezone,
		"updatedAt":      cfg.UpdatedAt,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": configDocID}, doc, opts)
	return err
}

// SetOverride flips only the manual status switch.
func (r *mongoScheduleRepo) SetOverride(ctx context.Context, override models.OverrideStatus) error {
	update := bson.M{"$set": bson.M{
		"statusOverride": override,
		"updatedAt":      time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": configDocID}, update, opts)
	return err
}

// AddHoliday appends a holiday rule and returns its ID.
func (r *mongoScheduleRepo) AddHoliday(ctx context.Context, rule models.HolidayRule) (string, error) {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	update := bson.M{
		"$push": bson.M{"holidayHours": rule},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": configDocID}, update, opts); err != nil {
		return "", err
	}
	return rule.ID, nil
}

// UpdateHoliday replaces a holiday rule in place by ID.
func (r *mongoScheduleRepo) UpdateHoliday(ctx context.Context, rule models.HolidayRule) error {
	update := bson.M{"$set": bson.M{
		"holidayHours.$": rule,
		"updatedAt":      time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": configDocID, "holidayHours.id": rule.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// DeleteHoliday removes a holiday rule by ID.
func (r *mongoScheduleRepo) DeleteHoliday(ctx context.Context, id string) error {
	update := bson.M{
		"$pull": bson.M{"holidayHours": bson.M{"id": id}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": configDocID}, update)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// AddTemporary appends a temporary (date range) rule and returns its ID.
func (r *mongoScheduleRepo) AddTemporary(ctx context.Context, rule models.TemporaryRule) (string, error) {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	update := bson.M{
		"$push": bson.M{"temporaryHours": rule},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": configDocID}, update, opts); err != nil {
		return "", err
	}
	return rule.ID, nil
}

// UpdateTemporary replaces a temporary rule in place by ID.
func (r *mongoScheduleRepo) UpdateTemporary(ctx context.Context, rule models.TemporaryRule) error {
	update := bson.M{"$set": bson.M{
		"temporaryHours.$": rule,
		"updatedAt":        time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": configDocID, "temporaryHours.id": rule.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// DeleteTemporary removes a temporary rule by ID.
func (r *mongoScheduleRepo) DeleteTemporary(ctx context.Context, id string) error {
	update := bson.M{
		"$pull": bson.M{"temporaryHours": bson.M{"id": id}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": configDocID}, update)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrRuleNotFound
	}
	return nil
}
