package hackerrank

import (
	"regexp"
	"strings"
)

const backgroundBaseURL = "https://hrcdn.net/s3_pub/hr-assets/dashboard/"

var levelQualifier = regexp.MustCompile(`\(Basic|\(Intermediate|\(Advanced`)

// BackgroundAssetName derives the dashboard thumbnail name from a denormalized
// certificate title, e.g. "Node (Basic)" -> "Nodejs".
func BackgroundAssetName(title string) string {
	title = levelQualifier.Split(title, 2)[0]
	title, _, _ = strings.Cut(title, "()")

	words := strings.Fields(title)
	out := make([]string, 0, len(words))
	for i, word := range words {
		switch word {
		case "C#":
			out = append(out, "C%23")
		case "Node", "Node.js":
			out = append(out, "Nodejs")
		case "Rest":
			out = append(out, "Rest_")
		case "(React)":
			out = append(out, "React")
		case "Engineer":
			if i+1 < len(words) && words[i+1] == "Intern" {
				out = append(out, "Engineering")
			} else {
				out = append(out, word)
			}
		default:
			out = append(out, word)
		}
	}
	return strings.Join(out, "")
}

func (c Certificate) BackgroundAssetName() string {
	return BackgroundAssetName(c.DenormalizedTitle())
}

// BackgroundURL returns the empty string when no asset name can be derived.
func BackgroundURL(name string) string {
	if name == "" {
		return ""
	}
	return backgroundBaseURL + name + ".svg"
}
