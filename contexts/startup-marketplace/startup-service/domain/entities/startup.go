package entities

import "time"

type BusinessType string

const (
	BusinessTypeB2B BusinessType = "B2B"
	BusinessTypeB2C BusinessType = "B2C"
)

func (b BusinessType) Valid() bool {
	return b == BusinessTypeB2B || b == BusinessTypeB2C
}

// Startup is owned by exactly one founder.
type Startup struct {
	StartupID      string       `json:"startupId"`
	FounderID      string       `json:"founderId"`
	Name           string       `json:"name"`
	Tagline        string       `json:"tagline"`
	Description    string       `json:"description"`
	Industry       string       `json:"industry"`
	Categories     []string     `json:"categories"`
	BusinessType   BusinessType `json:"businessType"`
	TargetAudience string       `json:"targetAudience"`
	Website        string       `json:"website"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// FeedItem is a matched startup with its founder's display name attached.
type FeedItem struct {
	Startup     Startup
	FounderName string
}
