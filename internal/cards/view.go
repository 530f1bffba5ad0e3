package cards

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/youruser/hrcerts/internal/hackerrank"
)

const cardDateLayout = "02-01-2006"

const (
	BadgeBlue   = "blue"
	BadgeGreen  = "green"
	BadgeAmber  = "amber"
	BadgeViolet = "violet"
	BadgeGray   = "gray"
	BadgeCyan   = "cyan"
)

func badge(c hackerrank.Certificate) string {
	switch c.Attributes.Status {
	case hackerrank.StatusPassed:
		if c.Attributes.Type == hackerrank.TypeRole {
			return BadgeBlue
		}
		switch c.Attributes.Certificate.Level {
		case hackerrank.LevelIntermediate:
			return BadgeAmber
		case hackerrank.LevelAdvanced:
			return BadgeViolet
		}
		return BadgeGreen
	case hackerrank.StatusFailed:
		return BadgeGray
	}
	return BadgeCyan
}

func NewCard(c hackerrank.Certificate) Card {
	card := Card{
		ID:            c.ID,
		Label:         c.Attributes.Certificate.Label,
		Level:         c.Attributes.Certificate.Level,
		Title:         c.DisplayTitle(),
		Type:          c.Attributes.Type,
		Status:        c.Attributes.Status,
		Score:         c.Attributes.Score,
		Description:   c.Attributes.Certificate.Description,
		Badge:         badge(c),
		BackgroundURL: hackerrank.BackgroundURL(c.BackgroundAssetName()),
		ViewURL:       c.ViewURL(),
		HasImage:      c.HasImage(),
		Downloadable:  c.Passed(),
	}
	if t, err := c.CompletedTime(); err == nil {
		card.CompletedAt = t.Format(cardDateLayout)
	}
	return card
}

func NewProfileSummary(p hackerrank.Profile) ProfileSummary {
	s := ProfileSummary{
		Username:     p.Username,
		Name:         p.Name,
		FullName:     p.FullName(),
		AvatarURL:    p.AvatarURL(),
		CustomAvatar: p.HasCustomAvatar(),
		JobsHeadline: p.JobsHeadline,
		URL:          p.URL(),
	}
	if !s.CustomAvatar {
		s.Initials = p.Initials()
	}
	if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		s.JoinedAt = t.UTC().Format(cardDateLayout)
	}
	return s
}

// Summarize counts passed certificates and sums the score of every record.
func Summarize(certs []hackerrank.Certificate) Summary {
	var s Summary
	for _, c := range certs {
		if c.Passed() {
			s.Passed++
		}
		s.TotalScore += c.Attributes.Score
	}
	return s
}

// Sort orders certificates by type, then by denormalized title. The sort is
// stable and does not modify certs.
func Sort(certs []hackerrank.Certificate) []hackerrank.Certificate {
	out := slices.Clone(certs)
	slices.SortStableFunc(out, func(a, b hackerrank.Certificate) int {
		if c := cmp.Compare(a.Attributes.Type, b.Attributes.Type); c != 0 {
			return c
		}
		return compareTitles(a.DenormalizedTitle(), b.DenormalizedTitle())
	})
	return out
}

// compareTitles orders case-insensitively; titles that differ only in case
// put the lowercase form first.
func compareTitles(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(b, a)
}

func BuildPage(profile hackerrank.Profile, certs []hackerrank.Certificate, opt FilterOptions) Page {
	sorted := Filter(Sort(certs), opt)

	cards := make([]Card, 0, len(sorted))
	for _, c := range sorted {
		cards = append(cards, NewCard(c))
	}
	return Page{
		Profile: NewProfileSummary(profile),
		Summary: Summarize(certs),
		Cards:   cards,
	}
}
