package export

import (
	"errors"
	"strings"

	"github.com/youruser/hrcerts/internal/apperr"
	"github.com/youruser/hrcerts/internal/hackerrank"
)

// Variant is how a certificate takes part in an export. It is decided once,
// before any network or rendering work starts.
type Variant int

const (
	Ineligible Variant = iota
	// HasImage records carry an upstream image that is embedded unchanged.
	HasImage
	// NeedsGeneration records passed but have no upstream image; they are rendered locally.
	NeedsGeneration
	// Unrenderable records passed but have neither an image nor the data to render one.
	Unrenderable
)

func (v Variant) String() string {
	switch v {
	case HasImage:
		return "has_image"
	case NeedsGeneration:
		return "needs_generation"
	case Unrenderable:
		return "unrenderable"
	}
	return "ineligible"
}

type Item struct {
	Cert    hackerrank.Certificate
	Variant Variant
	// Reason explains an Unrenderable variant.
	Reason string
}

func Classify(c hackerrank.Certificate) Item {
	switch {
	case c.HasImage():
		return Item{Cert: c, Variant: HasImage}
	case !c.Passed():
		return Item{Cert: c, Variant: Ineligible}
	}
	if err := renderable(c); err != nil {
		return Item{Cert: c, Variant: Unrenderable, Reason: err.Error()}
	}
	return Item{Cert: c, Variant: NeedsGeneration}
}

func renderable(c hackerrank.Certificate) error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("missing certificate id")
	}
	if strings.TrimSpace(c.Attributes.Certificate.Label) == "" {
		return errors.New("missing certificate title")
	}
	if _, err := c.CompletedTime(); err != nil {
		return errors.New("missing or invalid completion date")
	}
	return nil
}

// Plan classifies certs and drops ineligible ones, keeping input order.
// With onlyID set, the single matching eligible record is returned or
// NotFound is reported.
func Plan(certs []hackerrank.Certificate, onlyID string) ([]Item, error) {
	items := make([]Item, 0, len(certs))
	for _, c := range certs {
		item := Classify(c)
		if item.Variant == Ineligible {
			continue
		}
		if onlyID != "" && !strings.EqualFold(c.ID, onlyID) {
			continue
		}
		items = append(items, item)
	}

	if onlyID != "" && len(items) == 0 {
		return nil, apperr.NotFound("certificate %q not found among exportable certificates", onlyID)
	}
	return items, nil
}
