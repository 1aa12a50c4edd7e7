package models

import "time"

// WorkerProfile is created together with its worker user and never on its own.
type WorkerProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Skills          string `gorm:"type:text;not null;default:''" json:"skills"`
	ExperienceYears int    `gorm:"not null;default:0;check:experience_years >= 0" json:"experience_years"`
	Location        string `gorm:"size:255;not null;default:''" json:"location"`
	Status          string `gorm:"size:20;not null;default:'pending';check:status IN ('pending','ready','busy')" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
