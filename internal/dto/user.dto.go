package dto

// UserSummary is the only user shape ever returned to callers.
type UserSummary struct {
	ID    uint   `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ApprovalResult struct {
	ID       uint `json:"id"`
	Approved bool `json:"approved"`
}

type Stats struct {
	Owners          int64            `json:"owners"`
	Workers         int64            `json:"workers"`
	Businesses      int64            `json:"businesses"`
	PendingRequests int64            `json:"pending_requests"`
	ApprovedLinks   int64            `json:"approved_links"`
	Ratings         int64            `json:"ratings"`
	WorkersByStatus map[string]int64 `json:"workers_by_status"`
}
