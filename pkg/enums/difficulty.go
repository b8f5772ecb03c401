package enums

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Difficulty represents the canonical difficulty enum in Postgres.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// PGTypeDifficulty is the Postgres enum type backing habits.difficulty.
const PGTypeDifficulty = "difficulty"

var validDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	return string(d)
}

// IsValid reports whether the value is a known Difficulty.
func (d Difficulty) IsValid() bool {
	for _, candidate := range validDifficulties {
		if candidate == d {
			return true
		}
	}
	return false
}

// GormDBDataType maps the column onto the Postgres enum, plain text elsewhere.
func (Difficulty) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return dialectType(db, PGTypeDifficulty)
}

// ParseDifficulty converts raw input into a Difficulty.
func ParseDifficulty(value string) (Difficulty, error) {
	for _, candidate := range validDifficulties {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid difficulty %q", value)
}

// DifficultyValues lists the enum labels in declaration order.
func DifficultyValues() []string {
	return toStrings(validDifficulties)
}
