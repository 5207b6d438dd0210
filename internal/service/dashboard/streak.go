package dashboard

import (
	"time"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// LearningFromDays derives the streak summary from per-day study counts.
// days must be sorted DESC by date (most recent first); today is midnight in
// the user's timezone.
func LearningFromDays(days []domain.DayStudyCount, today time.Time) domain.LearningProgress {
	active := activeDays(days)
	return domain.LearningProgress{
		CurrentStreak: calculateStreak(active, today),
		StudiedToday:  len(active) > 0 && sameDay(active[0].Date, today),
	}
}

// calculateStreak returns the number of consecutive days with study activity,
// starting from today or, when today has none yet, from yesterday.
// days must be sorted DESC by date.
func calculateStreak(days []domain.DayStudyCount, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	streak := 0
	expectedDate := today

	// If today has no sessions, start from yesterday
	if !sameDay(days[0].Date, today) {
		expectedDate = today.AddDate(0, 0, -1)
	}

	for _, d := range days {
		if sameDay(d.Date, expectedDate) {
			streak++
			expectedDate = expectedDate.AddDate(0, 0, -1)
		} else {
			break // Gap in streak or unexpected date order
		}
	}
	return streak
}

// activeDays drops days without any sessions.
func activeDays(days []domain.DayStudyCount) []domain.DayStudyCount {
	out := make([]domain.DayStudyCount, 0, len(days))
	for _, d := range days {
		if d.Count > 0 {
			out = append(out, d)
		}
	}
	return out
}

// sameDay compares only the date parts of a and b.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
