package enums

import (
	"fmt"
	"regexp"
)

// BadgeType tags an unlocked achievement. The set is open: new badges ship
// without a schema change, so validity only checks the tag shape.
type BadgeType string

const (
	BadgeTypeFirstWeek   BadgeType = "first_week"
	BadgeTypeComebackKid BadgeType = "comeback_kid"
	BadgeTypeMicroMaster BadgeType = "micro_master"
)

var (
	knownBadgeTypes = []BadgeType{
		BadgeTypeFirstWeek,
		BadgeTypeComebackKid,
		BadgeTypeMicroMaster,
	}
	badgeTagRe = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
)

func (b BadgeType) String() string {
	return string(b)
}

// IsValid reports whether the tag is a lower snake_case identifier.
func (b BadgeType) IsValid() bool {
	return len(b) <= 64 && badgeTagRe.MatchString(string(b))
}

// IsKnown reports whether the tag is one of the badges shipped today.
func (b BadgeType) IsKnown() bool {
	for _, candidate := range knownBadgeTypes {
		if candidate == b {
			return true
		}
	}
	return false
}

func ParseBadgeType(value string) (BadgeType, error) {
	b := BadgeType(value)
	if !b.IsValid() {
		return "", fmt.Errorf("invalid badge type %q", value)
	}
	return b, nil
}
