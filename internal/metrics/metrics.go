// Package metrics defines the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Selections counts selection outcomes. The result label is the winning
	// tier name (item, page_city, page, city, universal) or "no_fill".
	Selections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_ads_selections_total",
		Help: "Campaign selection outcomes by winning tier or no_fill.",
	}, []string{"result"})

	// AdminWrites counts accepted admin mutations by operation.
	AdminWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_ads_admin_writes_total",
		Help: "Accepted admin campaign mutations by operation.",
	}, []string{"op"})

	// SnapshotRefreshErrors counts failed campaign snapshot refreshes,
	// including those served stale.
	SnapshotRefreshErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_ads_snapshot_refresh_errors_total",
		Help: "Failed campaign snapshot refreshes.",
	})
)
