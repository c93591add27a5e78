package repository

import (
	"context"
	"time"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
)

// ResultCache stores computed growth metrics keyed by their input signature.
type ResultCache interface {
	Get(ctx context.Context, key string) (*models.GrowthMetrics, bool)
	Set(ctx context.Context, key string, m *models.GrowthMetrics, ttl time.Duration)
}

// SnapshotPublisher fans a fresh metrics snapshot out to registered listeners.
type SnapshotPublisher interface {
	Publish(m *models.GrowthMetrics)
}

type Metrics interface {
	RecordCalculation(variant string)
	RecordError(kind string)
	RecordLastGrowth(variant string, growthPct float64)
	RecordLatency(op string, seconds float64)
}
