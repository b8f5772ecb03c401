package models

import "time"

// User mirrors an account owned by the external identity provider. ID is the
// provider's UUID and every other table cascades from it.
type User struct {
	ID        string    `gorm:"column:id;type:text;primaryKey"`
	Email     string    `gorm:"column:email;type:text;not null;uniqueIndex:users_email_key"`
	Name      string    `gorm:"column:name;type:text;not null"`
	Avatar    *string   `gorm:"column:avatar;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`

	Profile      *TdahProfile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Habits       []Habit       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DailyChecks  []DailyCheck  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Points       *UserPoints   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Achievements []Achievement `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return TableUsers }

// NewUser is the insert shape for users.
type NewUser struct {
	ID     string  `json:"id" validate:"required,uuid"`
	Email  string  `json:"email" validate:"required,email,max=320"`
	Name   string  `json:"name" validate:"required,max=200"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,max=2048"`
}

// Validate checks the insert shape before it reaches storage.
func (n NewUser) Validate() error {
	return validateStruct(n)
}

// ToModel builds the row to insert.
func (n NewUser) ToModel() *User {
	return &User{
		ID:     n.ID,
		Email:  n.Email,
		Name:   n.Name,
		Avatar: n.Avatar,
	}
}
