// Package guides maps seasons to their downloadable PDF guides and holds the
// checkout link shown before a result is unlocked.
package guides

import (
	"github.com/abhisek/hairharmony/internal/season"
)

const defaultCheckoutURL = "https://buy.stripe.com/test_28o5lq9Ry6Hn4Ug000"

var defaultPDFs = map[season.Season]string{
	season.Spring: "https://drive.google.com/file/d/1pWvcD-rMgWPSwFZVel3CUJCZx5rF3AZ_/view?usp=sharing",
	season.Summer: "https://drive.google.com/file/d/1QVXHuP4cWhBqWPv_LthyksIT0Ql-n9XB/view?usp=sharing",
	season.Autumn: "https://drive.google.com/file/d/1MFJ34KIvvSQJneooc_Goyjqe_yYtyj-7/view?usp=sharing",
	season.Winter: "https://drive.google.com/file/d/1sO2MifVy1hkUfJT-vt4DrSsd-LcH32rS/view?usp=sharing",
}

var defaultFeatures = []string{
	"Complete seasonal color analysis",
	"Personalized hair color recommendations",
	"Professional styling tips",
	"Instant PDF download",
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	pdfs     map[season.Season]string
	checkout string
	features []string
}

// DefaultCatalog returns the built-in guide links.
func DefaultCatalog() *Catalog {
	return New(nil, "")
}

// New builds a catalog. Seasons missing from pdfs, or mapped to "", keep
// their default link; an empty checkout keeps the default checkout link.
func New(pdfs map[season.Season]string, checkout string) *Catalog {
	c := &Catalog{
		pdfs:     make(map[season.Season]string, len(defaultPDFs)),
		checkout: defaultCheckoutURL,
		features: defaultFeatures,
	}
	for s, u := range defaultPDFs {
		c.pdfs[s] = u
	}
	for s, u := range pdfs {
		if s.Valid() && u != "" {
			c.pdfs[s] = u
		}
	}
	if checkout != "" {
		c.checkout = checkout
	}
	return c
}

// PDFURL returns the guide for s. Anything that is not one of the four
// seasons gets the spring guide.
func (c *Catalog) PDFURL(s season.Season) string {
	if u, ok := c.pdfs[s]; ok {
		return u
	}
	return c.pdfs[season.Spring]
}

// Lookup returns the guide for s and whether s is a known season.
func (c *Catalog) Lookup(s season.Season) (string, bool) {
	u, ok := c.pdfs[s]
	return u, ok
}

// CheckoutURL returns the payment link that unlocks the full result.
func (c *Catalog) CheckoutURL() string {
	return c.checkout
}

// Features returns the selling points listed on the preview.
func (c *Catalog) Features() []string {
	out := make([]string, len(c.features))
	copy(out, c.features)
	return out
}
