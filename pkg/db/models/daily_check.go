package models

import (
	"time"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/enums"
)

// DailyCheck is one check-in attempt for a habit. Rows are never updated.
type DailyCheck struct {
	ID             int64             `gorm:"column:id;primaryKey"`
	HabitID        int64             `gorm:"column:habit_id;not null;index:daily_checks_habit_id_date_idx,priority:1"`
	UserID         string            `gorm:"column:user_id;type:text;not null;index:daily_checks_user_id_date_idx,priority:1"`
	Date           time.Time         `gorm:"column:date;not null;index:daily_checks_habit_id_date_idx,priority:2;index:daily_checks_user_id_date_idx,priority:2"`
	Status         enums.CheckStatus `gorm:"column:status;not null;check:daily_checks_status_check,status IN ('completed','partial','skipped','missed')"`
	ActualDuration *int              `gorm:"column:actual_duration"`
	EnergyLevel    *int              `gorm:"column:energy_level"`
	FocusLevel     *int              `gorm:"column:focus_level"`
	Mood           *int              `gorm:"column:mood"`
	Notes          *string           `gorm:"column:notes;type:text"`
	Triggers       *string           `gorm:"column:triggers;type:text"`
	CreatedAt      time.Time         `gorm:"column:created_at;not null;autoCreateTime"`
}

func (DailyCheck) TableName() string { return TableDailyChecks }

// NewDailyCheck is the insert shape for daily_checks.
type NewDailyCheck struct {
	HabitID        int64             `json:"habit_id" validate:"required,min=1"`
	UserID         string            `json:"user_id" validate:"required"`
	Date           time.Time         `json:"date" validate:"required"`
	Status         enums.CheckStatus `json:"status" validate:"required,enum"`
	ActualDuration *int              `json:"actual_duration,omitempty" validate:"omitempty,min=0,max=1440"`
	EnergyLevel    *int              `json:"energy_level,omitempty" validate:"omitempty,min=1,max=5"`
	FocusLevel     *int              `json:"focus_level,omitempty" validate:"omitempty,min=1,max=5"`
	Mood           *int              `json:"mood,omitempty" validate:"omitempty,min=1,max=5"`
	Notes          *string           `json:"notes,omitempty" validate:"omitempty,max=4000"`
	Triggers       *string           `json:"triggers,omitempty" validate:"omitempty,max=2000"`
}

func (n NewDailyCheck) Validate() error {
	return validateStruct(n)
}

func (n NewDailyCheck) ToModel() *DailyCheck {
	return &DailyCheck{
		HabitID:        n.HabitID,
		UserID:         n.UserID,
		Date:           n.Date,
		Status:         n.Status,
		ActualDuration: n.ActualDuration,
		EnergyLevel:    n.EnergyLevel,
		FocusLevel:     n.FocusLevel,
		Mood:           n.Mood,
		Notes:          n.Notes,
		Triggers:       n.Triggers,
	}
}
