package entities

import "time"

type Feedback struct {
	FeedbackID string    `json:"feedbackId"`
	StartupID  string    `json:"startupId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FeedbackView joins feedback with the author's display name.
type FeedbackView struct {
	Feedback   Feedback
	AuthorName string
}
