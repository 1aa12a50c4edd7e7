package models

import "time"

type Business struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name     string `gorm:"size:150;not null" json:"name"`
	Category string `gorm:"size:100" json:"category"`
	Location string `gorm:"size:255" json:"location"`

	CreatedAt time.Time `json:"created_at"`
}
