package models

import (
	"time"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/enums"
	"gorm.io/datatypes"
)

// Achievement records an unlocked badge. HabitID is an optional pointer at a
// habit without a foreign key, so it survives the habit being deleted.
type Achievement struct {
	ID         int64             `gorm:"column:id;primaryKey"`
	UserID     string            `gorm:"column:user_id;type:text;not null;index:achievements_user_id_idx"`
	BadgeType  enums.BadgeType   `gorm:"column:badge_type;type:text;not null"`
	HabitID    *int64            `gorm:"column:habit_id"`
	Metadata   datatypes.JSONMap `gorm:"column:metadata;type:text"`
	UnlockedAt time.Time         `gorm:"column:unlocked_at;not null;autoCreateTime"`
}

func (Achievement) TableName() string { return TableAchievements }

// NewAchievement is the insert shape for achievements.
type NewAchievement struct {
	UserID    string          `json:"user_id" validate:"required"`
	BadgeType enums.BadgeType `json:"badge_type" validate:"required,enum"`
	HabitID   *int64          `json:"habit_id,omitempty" validate:"omitempty,min=1"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
}

func (n NewAchievement) Validate() error {
	return validateStruct(n)
}

func (n NewAchievement) ToModel() *Achievement {
	achievement := &Achievement{
		UserID:    n.UserID,
		BadgeType: n.BadgeType,
		HabitID:   n.HabitID,
	}
	if n.Metadata != nil {
		achievement.Metadata = datatypes.JSONMap(n.Metadata)
	}
	return achievement
}
