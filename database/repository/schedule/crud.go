// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

func (r *mongoScheduleRepo) GetByDoctorID(ctx context.Context, doctorID string) (*models.ScheduleConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID}
	var cfg models.ScheduleConfig
	if err := r.coll.FindOne(ctx, filter).Decode(&cfg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch schedule for doctor %s: %w", doctorID, err)
	}
	return &cfg, nil
}

// Upsert replaces the whole schedule document for the config's doctor. There
// is no partial-field patch; the editor always saves the full object.
func (r *mongoScheduleRepo) Upsert(ctx context.Context, cfg models.ScheduleConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	cfg.UpdatedAt = time.Now()

	filter := bson.M{"doctorId": cfg.DoctorID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, cfg, opts); err != nil {
		return fmt.Errorf("failed to save schedule for doctor %s: %w", cfg.DoctorID, err)
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteByDoctorID(ctx context.Context, doctorID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return fmt.Errorf("failed to delete schedule for doctor %s: %w", doctorID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
