package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Role         string `gorm:"size:20;not null;index;check:role IN ('admin','owner','worker')" json:"role"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Phone        string `gorm:"size:20" json:"phone"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
