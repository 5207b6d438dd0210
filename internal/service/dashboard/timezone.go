package dashboard

import (
	"strings"
	"time"
)

// UserClock pins the instant a dashboard is built for to the user's
// timezone. Day-based rules (study streak, certificate expiry) read Today;
// instant-based rules (invoice overdue) read Now.
type UserClock struct {
	Now   time.Time // in the user's location
	Today time.Time // local midnight of Now
}

// NewUserClock resolves tzName with ParseTimezone and localises now.
func NewUserClock(now time.Time, tzName string) UserClock {
	local := now.In(ParseTimezone(tzName))
	y, m, d := local.Date()
	return UserClock{
		Now:   local,
		Today: time.Date(y, m, d, 0, 0, 0, 0, local.Location()),
	}
}

// TodayUTC is Today as a UTC instant, the lower bound the study repository
// buckets sessions from.
func (c UserClock) TodayUTC() time.Time {
	return c.Today.UTC()
}

// Location returns the user's timezone.
func (c UserClock) Location() *time.Location {
	return c.Now.Location()
}

// ParseTimezone loads an IANA zone name from user settings. Blank or unknown
// names fall back to UTC so a bad setting never hides the dashboard.
func ParseTimezone(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
