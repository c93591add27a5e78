package store

import (
	"testing"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
)

func TestPublishNotifiesListeners(t *testing.T) {
	s := New()
	var got []*models.GrowthMetrics
	s.Subscribe(func(m *models.GrowthMetrics) { got = append(got, m) })

	m1 := &models.GrowthMetrics{Variant: models.VariantClosedForm}
	m2 := &models.GrowthMetrics{Variant: models.VariantDirectD1}
	s.Publish(m1)
	s.Publish(m2)

	if len(got) != 2 || got[0] != m1 || got[1] != m2 {
		t.Fatalf("listener saw %d snapshots", len(got))
	}
	if s.Latest() != m2 {
		t.Fatalf("latest snapshot not the last published")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := New()
	var calls int
	id := s.Subscribe(func(*models.GrowthMetrics) { calls++ })
	s.Publish(&models.GrowthMetrics{})
	s.Unsubscribe(id)
	s.Publish(&models.GrowthMetrics{})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestLatestNilBeforePublish(t *testing.T) {
	if New().Latest() != nil {
		t.Fatalf("expected nil latest on fresh store")
	}
}

func TestMultipleListeners(t *testing.T) {
	s := New()
	a, b := 0, 0
	s.Subscribe(func(*models.GrowthMetrics) { a++ })
	s.Subscribe(func(*models.GrowthMetrics) { b++ })
	s.Publish(&models.GrowthMetrics{})
	if a != 1 || b != 1 {
		t.Fatalf("a=%d b=%d, want 1 1", a, b)
	}
}
