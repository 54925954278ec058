package domain

// WinsPerReview is the fixed number of win entries in a weekly review.
const WinsPerReview = 3

// WeeklyReview is the "3 wins / 1 fail" retrospective for a week bucket.
// At most one exists per week-start date.
type WeeklyReview struct {
	ID        string                `json:"id"`
	WeekStart string                `json:"weekStart"` // ISO date, unique within the log
	Wins      [WinsPerReview]string `json:"wins"`
	Fail      string                `json:"fail"`
}
