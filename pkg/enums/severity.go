package enums

import "fmt"

// Severity is the self-reported intensity stored on a profile. Storage keeps
// it as free text; the closed set is enforced by insert validation only.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

var validSeverities = []Severity{
	SeverityMild,
	SeverityModerate,
	SeveritySevere,
}

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	for _, candidate := range validSeverities {
		if candidate == s {
			return true
		}
	}
	return false
}

func ParseSeverity(value string) (Severity, error) {
	for _, candidate := range validSeverities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid severity %q", value)
}
