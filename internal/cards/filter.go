package cards

import (
	"strings"

	"github.com/youruser/hrcerts/internal/hackerrank"
)

type FilterOptions struct {
	Statuses  []string
	Types     []string
	Levels    []string
	FreeWords string
}

func containsFold(hay []string, needle string) bool {
	for _, h := range hay {
		if strings.EqualFold(strings.TrimSpace(h), needle) {
			return true
		}
	}
	return false
}

// Filter keeps certificates matching every set option. Free words must all
// appear in the label, description or denormalized title.
func Filter(certs []hackerrank.Certificate, opt FilterOptions) []hackerrank.Certificate {
	out := make([]hackerrank.Certificate, 0, len(certs))
	for _, c := range certs {
		if len(opt.Statuses) > 0 && !containsFold(opt.Statuses, string(c.Attributes.Status)) {
			continue
		}
		if len(opt.Types) > 0 && !containsFold(opt.Types, string(c.Attributes.Type)) {
			continue
		}
		if len(opt.Levels) > 0 && !containsFold(opt.Levels, c.Attributes.Certificate.Level) {
			continue
		}
		if opt.FreeWords != "" {
			text := strings.ToLower(strings.Join([]string{
				c.Attributes.Certificate.Label,
				c.Attributes.Certificate.Description,
				c.DenormalizedTitle(),
			}, " "))
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				if !strings.Contains(text, strings.ToLower(k)) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
