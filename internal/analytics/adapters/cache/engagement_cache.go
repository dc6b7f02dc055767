package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"proposal-insights-service/internal/analytics/core/domain"
	"proposal-insights-service/internal/observability"
)

// EngagementReader is the read surface the cache decorates.
type EngagementReader interface {
	Overview(ctx context.Context, proposalID string) (*domain.AnalyticsOverview, error)
	Heatmap(ctx context.Context, proposalID string) ([]domain.SlideHeatmapItem, error)
	Sessions(ctx context.Context, proposalID string) ([]domain.ViewerSession, error)
	Live(ctx context.Context, proposalID string) (bool, error)
}

// EngagementCache memoizes aggregation results per proposal for a short TTL.
// Dashboards poll these endpoints on an interval, so recomputing the full
// aggregation on every poll is wasted work. Live is deliberately never
// cached: staleness there defeats the liveness probe.
type EngagementCache struct {
	inner EngagementReader
	c     *gocache.Cache
}

func NewEngagementCache(inner EngagementReader, ttl time.Duration) *EngagementCache {
	return &EngagementCache{
		inner: inner,
		c:     gocache.New(ttl, 2*ttl),
	}
}

func (e *EngagementCache) Overview(ctx context.Context, proposalID string) (*domain.AnalyticsOverview, error) {
	key := "overview:" + proposalID
	if v, ok := e.c.Get(key); ok {
		observability.EngagementCacheEvents.WithLabelValues("overview", "hit").Inc()
		return v.(*domain.AnalyticsOverview), nil
	}
	observability.EngagementCacheEvents.WithLabelValues("overview", "miss").Inc()

	out, err := e.inner.Overview(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	e.c.SetDefault(key, out)
	return out, nil
}

func (e *EngagementCache) Heatmap(ctx context.Context, proposalID string) ([]domain.SlideHeatmapItem, error) {
	key := "heatmap:" + proposalID
	if v, ok := e.c.Get(key); ok {
		observability.EngagementCacheEvents.WithLabelValues("heatmap", "hit").Inc()
		return v.([]domain.SlideHeatmapItem), nil
	}
	observability.EngagementCacheEvents.WithLabelValues("heatmap", "miss").Inc()

	out, err := e.inner.Heatmap(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	e.c.SetDefault(key, out)
	return out, nil
}

func (e *EngagementCache) Sessions(ctx context.Context, proposalID string) ([]domain.ViewerSession, error) {
	key := "sessions:" + proposalID
	if v, ok := e.c.Get(key); ok {
		observability.EngagementCacheEvents.WithLabelValues("sessions", "hit").Inc()
		return v.([]domain.ViewerSession), nil
	}
	observability.EngagementCacheEvents.WithLabelValues("sessions", "miss").Inc()

	out, err := e.inner.Sessions(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	e.c.SetDefault(key, out)
	return out, nil
}

func (e *EngagementCache) Live(ctx context.Context, proposalID string) (bool, error) {
	return e.inner.Live(ctx, proposalID)
}
