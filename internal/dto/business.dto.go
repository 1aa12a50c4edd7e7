package dto

import "time"

type BusinessListItem struct {
	ID        uint      `json:"id"`
	OwnerID   uint      `json:"owner_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	OwnerName string    `json:"owner_name"`
}

type PendingRequest struct {
	RequestID    uint      `json:"request_id"`
	BusinessID   uint      `json:"business_id"`
	BusinessName string    `json:"business_name"`
	WorkerUserID uint      `json:"worker_user_id"`
	WorkerName   string    `json:"worker_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}

// WorkerRequest is one of a worker's own applications.
type WorkerRequest struct {
	RequestID    uint      `json:"request_id"`
	BusinessID   uint      `json:"business_id"`
	BusinessName string    `json:"business_name"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}
