package httptransport

import "time"

// CreateStartupRequest is the founder-supplied startup body.
type CreateStartupRequest struct {
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline"`
	Description    string   `json:"description"`
	Industry       string   `json:"industry"`
	Categories     []string `json:"categories"`
	BusinessType   string   `json:"businessType"`
	TargetAudience string   `json:"targetAudience"`
	Website        string   `json:"website"`
}

type StartupResponse struct {
	StartupID      string    `json:"startupId"`
	FounderID      string    `json:"founderId"`
	Name           string    `json:"name"`
	Tagline        string    `json:"tagline"`
	Description    string    `json:"description"`
	Industry       string    `json:"industry"`
	Categories     []string  `json:"categories"`
	BusinessType   string    `json:"businessType"`
	TargetAudience string    `json:"targetAudience"`
	Website        string    `json:"website"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateStartupResponse struct {
	Message string          `json:"message"`
	Startup StartupResponse `json:"startup"`
}

// UserSummary is the public display slice of an account.
type UserSummary struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
}

// FeedItemResponse is a matched startup with its founder attached.
type FeedItemResponse struct {
	StartupResponse
	Founder UserSummary `json:"founder"`
}

type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type FeedbackResponse struct {
	FeedbackID string      `json:"feedbackId"`
	StartupID  string      `json:"startupId"`
	Rating     int         `json:"rating"`
	Comment    string      `json:"comment"`
	User       UserSummary `json:"user"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
