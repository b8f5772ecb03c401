package enums

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// HabitCategory groups habits by life area.
type HabitCategory string

const (
	HabitCategoryMentalHealth   HabitCategory = "mental_health"
	HabitCategoryPhysicalHealth HabitCategory = "physical_health"
	HabitCategoryProductivity   HabitCategory = "productivity"
	HabitCategorySocial         HabitCategory = "social"
	HabitCategoryCreativity     HabitCategory = "creativity"
)

// PGTypeHabitCategory is the Postgres enum type backing habits.category.
const PGTypeHabitCategory = "category"

var validHabitCategories = []HabitCategory{
	HabitCategoryMentalHealth,
	HabitCategoryPhysicalHealth,
	HabitCategoryProductivity,
	HabitCategorySocial,
	HabitCategoryCreativity,
}

// String implements fmt.Stringer.
func (c HabitCategory) String() string {
	return string(c)
}

// IsValid reports whether the value matches the Postgres enum.
func (c HabitCategory) IsValid() bool {
	for _, candidate := range validHabitCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// GormDBDataType maps the column onto the Postgres enum, plain text elsewhere.
func (HabitCategory) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return dialectType(db, PGTypeHabitCategory)
}

// ParseHabitCategory converts raw input into a HabitCategory.
func ParseHabitCategory(value string) (HabitCategory, error) {
	for _, candidate := range validHabitCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid habit category %q", value)
}

// HabitCategoryValues lists the enum labels in declaration order.
func HabitCategoryValues() []string {
	return toStrings(validHabitCategories)
}
