package models

import (
	"time"

	dbtypes "github.com/MathieuSchaff/tdah-habit-tracket/pkg/db/types"
	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/enums"
	"gorm.io/datatypes"
)

const DefaultGamificationLevel = 3

// TdahProfile holds condition-specific settings, at most one per user.
type TdahProfile struct {
	ID                int64              `gorm:"column:id;primaryKey"`
	UserID            string             `gorm:"column:user_id;type:text;not null;uniqueIndex:tdah_profiles_user_id_key"`
	Severity          *enums.Severity    `gorm:"column:severity;type:text"`
	Medication        *bool              `gorm:"column:medication;default:false"`
	Triggers          dbtypes.StringList `gorm:"column:triggers;type:text"`
	Preferences       datatypes.JSONMap  `gorm:"column:preferences;type:text"`
	GamificationLevel *int               `gorm:"column:gamification_level;default:3"`
	CreatedAt         time.Time          `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt         time.Time          `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (TdahProfile) TableName() string { return TableTdahProfiles }

// NewTdahProfile is the insert shape for tdah_profiles.
type NewTdahProfile struct {
	UserID            string          `json:"user_id" validate:"required"`
	Severity          *enums.Severity `json:"severity,omitempty" validate:"omitempty,enum"`
	Medication        *bool           `json:"medication,omitempty"`
	Triggers          []string        `json:"triggers,omitempty" validate:"omitempty,dive,required,max=200"`
	Preferences       map[string]any  `json:"preferences,omitempty"`
	GamificationLevel *int            `json:"gamification_level,omitempty" validate:"omitempty,min=1,max=5"`
}

func (n NewTdahProfile) Validate() error {
	return validateStruct(n)
}

func (n NewTdahProfile) ToModel() *TdahProfile {
	profile := &TdahProfile{
		UserID:            n.UserID,
		Severity:          n.Severity,
		Medication:        n.Medication,
		GamificationLevel: n.GamificationLevel,
	}
	if n.Triggers != nil {
		profile.Triggers = dbtypes.StringList(n.Triggers)
	}
	if n.Preferences != nil {
		profile.Preferences = datatypes.JSONMap(n.Preferences)
	}
	return profile
}
