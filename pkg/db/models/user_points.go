package models

import "time"

// UserPoints is the per-user gamification ledger. Counters are maintained by
// scoring code outside this package.
type UserPoints struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	UserID            string    `gorm:"column:user_id;type:text;not null;uniqueIndex:user_points_user_id_key"`
	TotalPoints       *int      `gorm:"column:total_points;default:0"`
	Level             *int      `gorm:"column:level;default:1"`
	WeeklyPoints      *int      `gorm:"column:weekly_points;default:0"`
	MonthlyPoints     *int      `gorm:"column:monthly_points;default:0"`
	LongestStreak     *int      `gorm:"column:longest_streak;default:0"`
	CurrentStreakDays *int      `gorm:"column:current_streak_days;default:0"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (UserPoints) TableName() string { return TableUserPoints }

// NewUserPoints is the insert shape for user_points.
type NewUserPoints struct {
	UserID            string `json:"user_id" validate:"required"`
	TotalPoints       *int   `json:"total_points,omitempty" validate:"omitempty,min=0"`
	Level             *int   `json:"level,omitempty" validate:"omitempty,min=1"`
	WeeklyPoints      *int   `json:"weekly_points,omitempty" validate:"omitempty,min=0"`
	MonthlyPoints     *int   `json:"monthly_points,omitempty" validate:"omitempty,min=0"`
	LongestStreak     *int   `json:"longest_streak,omitempty" validate:"omitempty,min=0"`
	CurrentStreakDays *int   `json:"current_streak_days,omitempty" validate:"omitempty,min=0"`
}

func (n NewUserPoints) Validate() error {
	return validateStruct(n)
}

func (n NewUserPoints) ToModel() *UserPoints {
	return &UserPoints{
		UserID:            n.UserID,
		TotalPoints:       n.TotalPoints,
		Level:             n.Level,
		WeeklyPoints:      n.WeeklyPoints,
		MonthlyPoints:     n.MonthlyPoints,
		LongestStreak:     n.LongestStreak,
		CurrentStreakDays: n.CurrentStreakDays,
	}
}
