package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningProgress summarises the user's study streak.
// StudiedToday implies CurrentStreak includes today.
type LearningProgress struct {
	CurrentStreak int
	StudiedToday  bool
}

// DayStudyCount holds the number of study sessions logged on a date.
type DayStudyCount struct {
	Date  time.Time
	Count int
}

// Certificate is a read-only snapshot of a trade certificate or card
// (ECS, CSCS, 18th Edition and so on).
type Certificate struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Category   string
	ExpiryDate *time.Time
}

// UserSettings holds per-user display preferences used by the dashboard.
type UserSettings struct {
	UserID    uuid.UUID
	Timezone  string
	UpdatedAt time.Time
}

// DefaultUserSettings returns UserSettings with sensible defaults.
func DefaultUserSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:   userID,
		Timezone: "UTC",
	}
}
