package restaurant

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time measured from midnight
type TimeOfDay time.Duration

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// NewTimeOfDay builds a TimeOfDay from hour, minute and second
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("invalid time of day %02d:%02d:%02d", hour, minute, second)
	}
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second), nil
}

// ParseTimeOfDay accepts HH:MM:SS or HH:MM
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q: expected HH:MM or HH:MM:SS", value)
}

// TimeOfDayOf extracts the time of day of t in its own location
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()))
}

// Before reports whether t is earlier in the day than other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After reports whether t is later in the day than other
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// String renders HH:MM
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
