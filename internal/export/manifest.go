package export

import (
	"strings"
)

const ManifestName = "missing_certificates.txt"

// Omission is a passed certificate that could not be placed in the archive.
type Omission struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	ViewURL string `json:"view_url"`
	Reason  string `json:"reason"`
}

func omissionOf(item Item) Omission {
	return Omission{
		ID:      item.Cert.ID,
		Title:   item.Cert.FileTitle(),
		ViewURL: item.Cert.ViewURL(),
		Reason:  item.Reason,
	}
}

// ManifestText lists omitted certificates with a link to view each one on
// the original site.
func ManifestText(username string, omitted []Omission) string {
	lines := []string{}
	header := "The following certificates passed but have no image that could be exported."
	if username != "" {
		header = "The following certificates of " + username + " passed but have no image that could be exported."
	}
	lines = append(lines, header, "They can still be viewed on HackerRank:", "")
	for _, o := range omitted {
		lines = append(lines, "- "+o.Title+" ["+strings.ToUpper(o.ID)+"]")
		lines = append(lines, "  "+o.ViewURL)
		if o.Reason != "" {
			lines = append(lines, "  reason: "+o.Reason)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
