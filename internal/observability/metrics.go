package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by route pattern and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proposal_insights_http_requests_total",
			Help: "Handled HTTP requests by route and status.",
		},
		[]string{"route", "status"},
	)

	// EngagementCacheEvents counts hits and misses on the engagement read cache.
	EngagementCacheEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proposal_insights_engagement_cache_events_total",
			Help: "Engagement cache lookups by view and result.",
		},
		[]string{"view", "result"},
	)
)
