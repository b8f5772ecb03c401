package enums

import "fmt"

// TimeOfDay is the preferred slot for a habit.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayFlexible  TimeOfDay = "flexible"
)

var validTimesOfDay = []TimeOfDay{
	TimeOfDayMorning,
	TimeOfDayAfternoon,
	TimeOfDayEvening,
	TimeOfDayFlexible,
}

func (t TimeOfDay) String() string {
	return string(t)
}

func (t TimeOfDay) IsValid() bool {
	for _, candidate := range validTimesOfDay {
		if candidate == t {
			return true
		}
	}
	return false
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	for _, candidate := range validTimesOfDay {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid time of day %q", value)
}
