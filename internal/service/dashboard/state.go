package dashboard

import (
	"time"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// Build computes the observable dashboard state for a snapshot.
//
// While the data layer is loading or has reported an error the result is the
// loading state and no derivation runs. Otherwise metrics, stat cards and the
// action queue are computed from scratch; an empty queue is the all-clear
// ready state, never the loading state.
func Build(snap Snapshot, now time.Time, opts Options) domain.Dashboard {
	if !snap.Ready() {
		return domain.Dashboard{Status: domain.DashboardLoading}
	}

	metrics := ComputeMetrics(snap.Input, now, opts)
	return domain.Dashboard{
		Status:  domain.DashboardReady,
		Metrics: metrics,
		Stats:   BuildStats(metrics, opts),
		Actions: DeriveActions(snap.Input, now, opts),
	}
}
