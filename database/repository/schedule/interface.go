// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"medibook/config"
	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists per-doctor schedule configurations. A missing
// doctor is reported as mongo.ErrNoDocuments; the service layer substitutes
// defaults.
type ScheduleRepository interface {
	GetByDoctorID(ctx context.Context, doctorID string) (*models.ScheduleConfig, error)
	Upsert(ctx context.Context, cfg models.ScheduleConfig) error
	DeleteByDoctorID(ctx context.Context, doctorID string) error
	EnsureIndexes() error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
}
