package models

import "time"

// BusinessWorker is a worker's request to join a business. The pair
// (business_id, worker_user_id) is unique at the storage level.
type BusinessWorker struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint     `gorm:"not null;uniqueIndex:idx_business_workers_pair" json:"business_id"`
	Business   Business `gorm:"foreignKey:BusinessID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	WorkerUserID uint `gorm:"not null;uniqueIndex:idx_business_workers_pair;index" json:"worker_user_id"`
	Worker       User `gorm:"foreignKey:WorkerUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Approved bool `gorm:"not null;default:false" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
}
