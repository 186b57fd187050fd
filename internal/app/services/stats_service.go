package services

import (
	"context"
	"errors"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/repositories"
	"github.com/findjobsyria/api/internal/pkg/cache"
	"github.com/rs/zerolog"
)

// Cache keys for the public counters
const (
	statsTypesKey     = "stats:types"
	statsProvincesKey = "stats:provinces"
)

// StatsService computes the public counters over approved opportunities
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	GetProvinceStats(ctx context.Context) ([]dto.ProvinceStat, error)
	Invalidate(ctx context.Context)
}

type statsServiceImpl struct {
	oppRepo repositories.OpportunityRepository
	cache   cache.Cache
	ttl     time.Duration
	logger  zerolog.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(oppRepo repositories.OpportunityRepository, c cache.Cache, ttl time.Duration, logger zerolog.Logger) StatsService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &statsServiceImpl{
		oppRepo: oppRepo,
		cache:   c,
		ttl:     ttl,
		logger:  logger,
	}
}

// GetStats counts approved opportunities per type
func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	var cached dto.StatsResponse
	if s.lookup(ctx, statsTypesKey, &cached) {
		return &cached, nil
	}

	counts, err := s.oppRepo.CountApprovedByType(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		Jobs:      counts[models.OpportunityTypeJob],
		Training:  counts[models.OpportunityTypeTraining],
		Volunteer: counts[models.OpportunityTypeVolunteer],
	}
	stats.Total = stats.Jobs + stats.Training + stats.Volunteer

	s.store(ctx, statsTypesKey, stats)
	return stats, nil
}

// GetProvinceStats lists every province in canonical order, zero-filled
func (s *statsServiceImpl) GetProvinceStats(ctx context.Context) ([]dto.ProvinceStat, error) {
	var cached []dto.ProvinceStat
	if s.lookup(ctx, statsProvincesKey, &cached) {
		return cached, nil
	}

	counts, err := s.oppRepo.CountApprovedByProvince(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProvinceStat, 0, len(models.Provinces))
	for _, p := range models.Provinces {
		out = append(out, dto.ProvinceStat{Province: p, Count: counts[p]})
	}

	s.store(ctx, statsProvincesKey, out)
	return out, nil
}

// Invalidate drops the cached counters
func (s *statsServiceImpl) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsTypesKey, statsProvincesKey); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to invalidate stats cache")
	}
}

func (s *statsServiceImpl) lookup(ctx context.Context, key string, dest interface{}) bool {
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrNotFound) {
		s.logger.Warn().Err(err).Str("key", key).Msg("Stats cache read failed")
	}
	return false
}

func (s *statsServiceImpl) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Stats cache write failed")
	}
}
