package ratings

import (
	"math"
	"time"
)

// RaterDTO is one user's rating row as shown to the store owner.
type RaterDTO struct {
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmitResultDTO is the response for a rating submission.
type SubmitResultDTO struct {
	Message       string  `json:"message"`
	Rating        int     `json:"rating"`
	StoreID       int64   `json:"storeId"`
	OverallRating float64 `json:"overallRating"`
}

// RoundAverage rounds a raw SQL average to one decimal. Stores without
// ratings keep the 0 sentinel.
func RoundAverage(value float64) float64 {
	return math.Round(value*10) / 10
}
