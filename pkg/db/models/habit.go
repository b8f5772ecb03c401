package models

import (
	"time"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/enums"
	pkgerrors "github.com/MathieuSchaff/tdah-habit-tracket/pkg/errors"
)

const (
	DefaultMinDuration     = 5
	DefaultTargetDuration  = 30
	DefaultFrequencyTarget = 3
)

// Habit is a recurring activity defined by a user. LinkedHabitID chains habits
// for stacking and is deliberately not a foreign key: it may dangle.
type Habit struct {
	ID              int64                `gorm:"column:id;primaryKey"`
	UserID          string               `gorm:"column:user_id;type:text;not null;index:habits_user_id_idx"`
	Name            string               `gorm:"column:name;type:text;not null"`
	Description     *string              `gorm:"column:description;type:text"`
	Category        enums.HabitCategory  `gorm:"column:category;not null;check:habits_category_check,category IN ('mental_health','physical_health','productivity','social','creativity')"`
	Difficulty      enums.Difficulty     `gorm:"column:difficulty;not null;check:habits_difficulty_check,difficulty IN ('easy','medium','hard')"`
	MinDuration     *int                 `gorm:"column:min_duration;default:5"`
	TargetDuration  *int                 `gorm:"column:target_duration;default:30"`
	FrequencyType   *enums.FrequencyType `gorm:"column:frequency_type;type:text;default:'weekly'"`
	FrequencyTarget *int                 `gorm:"column:frequency_target;default:3"`
	TimeOfDay       *enums.TimeOfDay     `gorm:"column:time_of_day;type:text"`
	LinkedHabitID   *int64               `gorm:"column:linked_habit_id"`
	IsActive        *bool                `gorm:"column:is_active;default:true"`
	CreatedAt       time.Time            `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;not null;autoUpdateTime"`

	DailyChecks []DailyCheck `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE"`
}

func (Habit) TableName() string { return TableHabits }

// Active reports the is_active flag, treating NULL as the column default.
func (h Habit) Active() bool {
	return h.IsActive == nil || *h.IsActive
}

// NewHabit is the insert shape for habits.
type NewHabit struct {
	UserID          string               `json:"user_id" validate:"required"`
	Name            string               `json:"name" validate:"required,max=200"`
	Description     *string              `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category        enums.HabitCategory  `json:"category" validate:"required,enum"`
	Difficulty      enums.Difficulty     `json:"difficulty" validate:"required,enum"`
	MinDuration     *int                 `json:"min_duration,omitempty" validate:"omitempty,min=0,max=1440"`
	TargetDuration  *int                 `json:"target_duration,omitempty" validate:"omitempty,min=0,max=1440"`
	FrequencyType   *enums.FrequencyType `json:"frequency_type,omitempty" validate:"omitempty,enum"`
	FrequencyTarget *int                 `json:"frequency_target,omitempty" validate:"omitempty,min=1"`
	TimeOfDay       *enums.TimeOfDay     `json:"time_of_day,omitempty" validate:"omitempty,enum"`
	LinkedHabitID   *int64               `json:"linked_habit_id,omitempty"`
	IsActive        *bool                `json:"is_active,omitempty"`
}

func (n NewHabit) Validate() error {
	if err := validateStruct(n); err != nil {
		return err
	}
	if n.MinDuration != nil && n.TargetDuration != nil && *n.MinDuration > *n.TargetDuration {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"min_duration": "must not exceed target_duration"})
	}
	return nil
}

func (n NewHabit) ToModel() *Habit {
	return &Habit{
		UserID:          n.UserID,
		Name:            n.Name,
		Description:     n.Description,
		Category:        n.Category,
		Difficulty:      n.Difficulty,
		MinDuration:     n.MinDuration,
		TargetDuration:  n.TargetDuration,
		FrequencyType:   n.FrequencyType,
		FrequencyTarget: n.FrequencyTarget,
		TimeOfDay:       n.TimeOfDay,
		LinkedHabitID:   n.LinkedHabitID,
		IsActive:        n.IsActive,
	}
}
