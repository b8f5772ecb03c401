package enums

import "fmt"

// FrequencyType is the period a habit's frequency target counts against.
type FrequencyType string

const (
	FrequencyTypeDaily  FrequencyType = "daily"
	FrequencyTypeWeekly FrequencyType = "weekly"
)

// DefaultFrequencyType matches the column default on habits.frequency_type.
const DefaultFrequencyType = FrequencyTypeWeekly

var validFrequencyTypes = []FrequencyType{
	FrequencyTypeDaily,
	FrequencyTypeWeekly,
}

func (f FrequencyType) String() string {
	return string(f)
}

func (f FrequencyType) IsValid() bool {
	for _, candidate := range validFrequencyTypes {
		if candidate == f {
			return true
		}
	}
	return false
}

func ParseFrequencyType(value string) (FrequencyType, error) {
	for _, candidate := range validFrequencyTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid frequency type %q", value)
}
