package cards

import "github.com/youruser/hrcerts/internal/hackerrank"

// Card is the display form of one certificate.
type Card struct {
	ID            string              `json:"id"`
	Label         string              `json:"label"`
	Level         string              `json:"level"`
	Title         string              `json:"title"`
	Type          hackerrank.CertType `json:"type"`
	Status        hackerrank.Status   `json:"status"`
	Score         int                 `json:"score"`
	Description   string              `json:"description"`
	CompletedAt   string              `json:"completed_at"`
	Badge         string              `json:"badge"`
	BackgroundURL string              `json:"background_url,omitempty"`
	ViewURL       string              `json:"view_url"`
	HasImage      bool                `json:"has_image"`
	Downloadable  bool                `json:"downloadable"`
}

type ProfileSummary struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Initials     string `json:"initials,omitempty"`
	AvatarURL    string `json:"avatar_url"`
	CustomAvatar bool   `json:"custom_avatar"`
	JoinedAt     string `json:"joined_at,omitempty"`
	JobsHeadline string `json:"jobs_headline"`
	URL          string `json:"url"`
}

type Summary struct {
	Passed     int `json:"passed"`
	TotalScore int `json:"total_score"`
}

// Page is everything the profile view renders for one user.
type Page struct {
	Profile ProfileSummary `json:"profile"`
	Summary Summary        `json:"summary"`
	Cards   []Card         `json:"cards"`
}
