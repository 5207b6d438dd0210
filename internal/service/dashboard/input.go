package dashboard

import "github.com/heartmarshall/tradedesk-backend/internal/domain"

// Input is the set of records the dashboard is computed from.
// Any field may be nil; nil slices and nil entries are treated as absent.
type Input struct {
	Quotes       []*domain.Quote
	Invoices     []*domain.Invoice
	Learning     *domain.LearningProgress
	Certificates []*domain.Certificate
}

// Snapshot is an Input together with the readiness flags of the data layer.
type Snapshot struct {
	Input
	IsLoading bool
	IsError   bool
}

// Ready reports whether derivation may run on the snapshot.
func (s Snapshot) Ready() bool {
	return !s.IsLoading && !s.IsError
}

// ---------------------------------------------------------------------------
// Boundary normalisation
// ---------------------------------------------------------------------------

// compact drops nil entries, keeping order.
func compact[T any](in []*T) []*T {
	out := make([]*T, 0, len(in))
	for _, v := range in {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

// learningOrZero returns a zero streak for a missing learning record and
// clamps a negative streak to zero.
func learningOrZero(p *domain.LearningProgress) domain.LearningProgress {
	if p == nil {
		return domain.LearningProgress{}
	}
	out := *p
	if out.CurrentStreak < 0 {
		out.CurrentStreak = 0
	}
	if out.StudiedToday && out.CurrentStreak == 0 {
		out.CurrentStreak = 1
	}
	return out
}
