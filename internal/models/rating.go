package models

import "time"

type Rating struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkerUserID uint `gorm:"not null;index" json:"worker_user_id"`
	Worker       User `gorm:"foreignKey:WorkerUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Stars   int    `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
