package enums

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// CheckStatus is the outcome recorded by a daily check-in.
type CheckStatus string

const (
	CheckStatusCompleted CheckStatus = "completed"
	CheckStatusPartial   CheckStatus = "partial"
	CheckStatusSkipped   CheckStatus = "skipped"
	CheckStatusMissed    CheckStatus = "missed"
)

// PGTypeCheckStatus is the Postgres enum type backing daily_checks.status.
const PGTypeCheckStatus = "status"

var validCheckStatuses = []CheckStatus{
	CheckStatusCompleted,
	CheckStatusPartial,
	CheckStatusSkipped,
	CheckStatusMissed,
}

// String implements fmt.Stringer.
func (s CheckStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches the Postgres enum.
func (s CheckStatus) IsValid() bool {
	for _, candidate := range validCheckStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// GormDBDataType maps the column onto the Postgres enum, plain text elsewhere.
func (CheckStatus) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return dialectType(db, PGTypeCheckStatus)
}

// ParseCheckStatus converts raw input into a CheckStatus.
func ParseCheckStatus(value string) (CheckStatus, error) {
	for _, candidate := range validCheckStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid check status %q", value)
}

// CheckStatusValues lists the enum labels in declaration order.
func CheckStatusValues() []string {
	return toStrings(validCheckStatuses)
}
