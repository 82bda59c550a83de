package domain

import "time"

// TimeLeft is the remaining time until an event, split for display.
type TimeLeft struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
	Mins  int `json:"mins"`
	Secs  int `json:"secs"`
}

// IsZero reports whether the event has started.
func (t TimeLeft) IsZero() bool {
	return t == TimeLeft{}
}

// Remaining returns the time from now until target, clamped at zero.
func Remaining(target, now time.Time) TimeLeft {
	diff := target.Sub(now)
	if diff < 0 {
		diff = 0
	}
	total := int64(diff / time.Second)
	return TimeLeft{
		Days:  int(total / 86400),
		Hours: int(total / 3600 % 24),
		Mins:  int(total / 60 % 60),
		Secs:  int(total % 60),
	}
}
