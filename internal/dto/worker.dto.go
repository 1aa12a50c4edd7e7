package dto

// WorkerRatingRow is a worker as read from the store, with the raw rating
// aggregate. Rounding and ordering happen in the use case.
type WorkerRatingRow struct {
	UserID          uint
	Name            string
	Phone           string
	Email           string
	Skills          string
	ExperienceYears int
	Location        string
	Status          string
	RatingSum       int64
	RatingCount     int64
}

type WorkerListItem struct {
	UserID          uint    `json:"user_id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	Skills          string  `json:"skills"`
	ExperienceYears int     `json:"experience_years"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	AvgRating       float64 `json:"avg_rating"`
	RatingCount     int64   `json:"rating_count"`
}

type WorkerStatus struct {
	UserID uint   `json:"user_id"`
	Status string `json:"status"`
}
