// File: services/schedule/service.go
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	scheduleRepo "medibook/database/repository/schedule"
	"medibook/models"
	"medibook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const defaultHorizonDays = 30
const maxHorizonDays = 365

// DefaultScheduleService is the concrete ScheduleService backed by the Mongo
// repository with a read-through cache in front of it.
type DefaultScheduleService struct {
	Repo               scheduleRepo.ScheduleRepository
	Cache              ConfigCache
	CacheTTL           time.Duration
	DefaultHorizonDays int
}

func (s *DefaultScheduleService) GetDoctorSchedule(ctx context.Context, doctorID string) (*models.ScheduleConfig, error) {
	if cfg := s.cachedConfig(ctx, doctorID); cfg != nil {
		return cfg, nil
	}

	stored, err := s.Repo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// First-time doctor: serve defaults without persisting; the
			// document is only written when the editor saves.
			cfg := ValidateScheduleConfig(models.ScheduleConfig{DoctorID: doctorID})
			return &cfg, nil
		}
		return nil, err
	}

	cfg := ValidateScheduleConfig(*stored)
	s.cacheConfig(ctx, doctorID, cfg)
	return &cfg, nil
}

func (s *DefaultScheduleService) SaveDoctorSchedule(ctx context.Context, doctorID string, cfg models.ScheduleConfig) (*models.ScheduleConfig, error) {
	if err := CheckScheduleConfig(cfg, time.Now()); err != nil {
		return nil, err
	}

	normalized := ValidateScheduleConfig(cfg)
	normalized.DoctorID = doctorID

	// Keep the existing document ID across replaces.
	if existing, err := s.Repo.GetByDoctorID(ctx, doctorID); err == nil {
		normalized.ID = existing.ID
	}

	if err := s.Repo.Upsert(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	s.invalidate(ctx, doctorID)
	return &normalized, nil
}

func (s *DefaultScheduleService) GetTimeSlots(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error) {
	cfg, err := s.GetDoctorSchedule(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return GenerateTimeSlots(*cfg, date)
}

func (s *DefaultScheduleService) GetAvailableDates(ctx context.Context, doctorID string, horizonDays int) ([]models.AvailableDate, error) {
	cfg, err := s.GetDoctorSchedule(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if horizonDays <= 0 {
		horizonDays = s.DefaultHorizonDays
	}
	if horizonDays <= 0 {
		horizonDays = defaultHorizonDays
	}
	if horizonDays > maxHorizonDays {
		horizonDays = maxHorizonDays
	}
	return GetAvailableDates(*cfg, horizonDays), nil
}

func (s *DefaultScheduleService) cachedConfig(ctx context.Context, doctorID string) *models.ScheduleConfig {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, cacheKey(doctorID))
	if err != nil || raw == "" {
		return nil
	}
	var cfg models.ScheduleConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		utils.GetLogger().Warn("discarding corrupt schedule cache entry",
			zap.String("doctorId", doctorID), zap.Error(err))
		return nil
	}
	return &cfg
}

func (s *DefaultScheduleService) cacheConfig(ctx context.Context, doctorID string, cfg models.ScheduleConfig) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(doctorID), string(raw), s.CacheTTL); err != nil {
		utils.GetLogger().Warn("failed to cache schedule",
			zap.String("doctorId", doctorID), zap.Error(err))
	}
}

func (s *DefaultScheduleService) invalidate(ctx context.Context, doctorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cacheKey(doctorID)); err != nil {
		utils.GetLogger().Warn("failed to invalidate schedule cache",
			zap.String("doctorId", doctorID), zap.Error(err))
	}
}

func cacheKey(doctorID string) string {
	return utils.ScheduleCachePrefix + doctorID
}
