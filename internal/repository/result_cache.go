package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
	domrepo "github.com/PaulReadCFA/impliedgrowth/internal/domain/repository"
	"github.com/PaulReadCFA/impliedgrowth/pkg/cache"
	xlogger "github.com/PaulReadCFA/impliedgrowth/pkg/logger"
)

// CacheResultStore adapts pkg/cache to the domain ResultCache interface.
// Misses and transport errors both surface as "not found": a cache failure
// only costs a recomputation.
type CacheResultStore struct {
	cache  cache.Service
	logger *xlogger.Logger
}

func NewCacheResultStore(c cache.Service) *CacheResultStore {
	return &CacheResultStore{cache: c}
}

func (s *CacheResultStore) SetLogger(l *xlogger.Logger) { s.logger = l }

func (s *CacheResultStore) Get(ctx context.Context, key string) (*models.GrowthMetrics, bool) {
	var m models.GrowthMetrics
	if err := s.cache.Get(ctx, key, &m); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) && s.logger != nil {
			s.logger.Warn("result cache get failed", xlogger.Error(err))
		}
		return nil, false
	}
	return &m, true
}

func (s *CacheResultStore) Set(ctx context.Context, key string, m *models.GrowthMetrics, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, m, ttl); err != nil && s.logger != nil {
		s.logger.Warn("result cache set failed", xlogger.Error(err))
	}
}

// InputKey derives a stable cache key from the model inputs and variant.
func InputKey(v models.ModelVariant, in models.ModelInputs) string {
	return fmt.Sprintf("calc:%s:%g:%g:%g:%g:%d",
		v, in.MarketPrice, in.CurrentDividend, in.RequiredReturn, in.ExpectedDividend, in.HorizonYears)
}

var _ domrepo.ResultCache = (*CacheResultStore)(nil)
