package hackerrank

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusStarted         Status = "started"
	StatusPassed          Status = "test_passed"
	StatusFailed          Status = "test_failed"
	StatusRetakeAvailable Status = "retake_available"
)

type CertType string

const (
	TypeSkill CertType = "skill"
	TypeRole  CertType = "role"
)

const (
	LevelBasic        = "Basic"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

const (
	PublicURL     = "https://www.hackerrank.com"
	defaultAvatar = "https://hrcdn.net/fcore/assets/profile/default_avatar_bg-fba6466c4f.png"
)

// Certificate is one entry of the upstream hacker_certificate listing.
type Certificate struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Links      Links      `json:"links"`
	Attributes Attributes `json:"attributes"`
}

type Links struct {
	Self string `json:"self"`
}

type Attributes struct {
	Status           Status   `json:"status"`
	Username         string   `json:"username"`
	UnlockDate       string   `json:"unlock_date,omitempty"`
	Certificate      Track    `json:"certificate"`
	Certificates     []string `json:"certificates"`
	CertificateImage string   `json:"certificate_image,omitempty"`
	HackerName       string   `json:"hacker_name"`
	TestUniqueID     string   `json:"test_unique_id"`
	Kind             string   `json:"kind"`
	CompletedAt      string   `json:"completed_at"`
	Score            int      `json:"score"`
	AllotedAt        string   `json:"alloted_at,omitempty"`
	Type             CertType `json:"type"`
}

type Track struct {
	TrackSlug     string `json:"track_slug"`
	Label         string `json:"label"`
	Level         string `json:"level"`
	SkillUniqueID string `json:"skill_unique_id"`
	Description   string `json:"description"`
}

func (c Certificate) Passed() bool {
	return c.Attributes.Status == StatusPassed
}

func (c Certificate) HasImage() bool {
	return strings.TrimSpace(c.Attributes.CertificateImage) != ""
}

// DisplayTitle is the label with the level appended in parentheses when set.
func (c Certificate) DisplayTitle() string {
	t := c.Attributes.Certificate
	if t.Level == "" {
		return t.Label
	}
	return fmt.Sprintf("%s (%s)", t.Label, t.Level)
}

// DenormalizedTitle returns the legacy single-string name, e.g. "Python (Basic)"
// or "Software Engineer ()". Records without it fall back to label/level.
func (c Certificate) DenormalizedTitle() string {
	if len(c.Attributes.Certificates) > 0 && c.Attributes.Certificates[0] != "" {
		return c.Attributes.Certificates[0]
	}
	return fmt.Sprintf("%s (%s)", c.Attributes.Certificate.Label, c.Attributes.Certificate.Level)
}

// FileTitle is the denormalized title with an empty " ()" level suffix removed.
func (c Certificate) FileTitle() string {
	title, _, _ := strings.Cut(c.DenormalizedTitle(), " ()")
	return title
}

func (c Certificate) ViewURL() string {
	return PublicURL + "/certificates/" + c.ID
}

var completedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CompletedTime parses completed_at. Times are normalized to UTC.
func (c Certificate) CompletedTime() (time.Time, error) {
	raw := strings.TrimSpace(c.Attributes.CompletedAt)
	if raw == "" {
		return time.Time{}, fmt.Errorf("certificate %s has no completion date", c.ID)
	}
	for _, layout := range completedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("certificate %s: unrecognized completion date %q", c.ID, raw)
}

// Profile is the subset of the upstream hacker profile the viewer uses.
type Profile struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	PersonalFirstName string `json:"personal_first_name"`
	PersonalLastName  string `json:"personal_last_name"`
	Avatar            string `json:"avatar"`
	CreatedAt         string `json:"created_at"`
	JobsHeadline      string `json:"jobs_headline"`
	JobTitle          string `json:"job_title"`
	Country           string `json:"country"`
	Company           string `json:"company"`
	School            string `json:"school"`
	Website           string `json:"website"`
	ShortBio          string `json:"short_bio"`
	LinkedinURL       string `json:"linkedin_url"`
	GithubURL         string `json:"github_url"`
	FollowersCount    int    `json:"followers_count"`
}

// FullName joins the trimmed personal names.
func (p Profile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.PersonalFirstName) + " " + strings.TrimSpace(p.PersonalLastName))
}

// Initials are shown over the default avatar.
func (p Profile) Initials() string {
	var b strings.Builder
	for _, s := range []string{p.PersonalFirstName, p.PersonalLastName} {
		s = strings.TrimSpace(s)
		if s != "" {
			r := []rune(s)[0]
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

func (p Profile) HasCustomAvatar() bool {
	return p.Avatar != "" && !strings.HasSuffix(p.Avatar, "gravatar.jpg")
}

func (p Profile) AvatarURL() string {
	if p.HasCustomAvatar() {
		return p.Avatar
	}
	return defaultAvatar
}

func (p Profile) URL() string {
	return ProfileURL(p.Username)
}

func ProfileURL(username string) string {
	return PublicURL + "/profile/" + username
}

// RecipientName picks the name printed on a certificate: the profile's
// personal name when present, otherwise the certificate's hacker_name.
func RecipientName(p *Profile, c Certificate) string {
	if p != nil {
		if name := p.FullName(); name != "" {
			return name
		}
	}
	return strings.TrimSpace(c.Attributes.HackerName)
}
