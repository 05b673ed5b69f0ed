// Package season classifies quiz answers into one of four color seasons.
//
// Classification is a pure function of the answers: a weighted point rubric
// picks a winner, and a short list of override rules can replace it for
// specific trait combinations. It never fails and is safe for concurrent use.
package season

import (
	"errors"
	"fmt"
	"strings"
)

// Season is a personal color palette category.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// ErrUnknownSeason is returned by Parse for labels outside the four seasons.
var ErrUnknownSeason = errors.New("unknown season")

// order is the fixed season order used for tie-breaks and override
// evaluation.
var order = [4]Season{Spring, Summer, Autumn, Winter}

// All returns the four seasons in fixed order.
func All() []Season {
	return order[:]
}

func (s Season) String() string { return string(s) }

// Title returns the capitalized label, e.g. "Autumn".
func (s Season) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Valid reports whether s is one of the four seasons.
func (s Season) Valid() bool {
	return s.index() >= 0
}

func (s Season) index() int {
	for i, o := range order {
		if o == s {
			return i
		}
	}
	return -1
}

// Parse matches a label against the four seasons, ignoring case and
// surrounding whitespace. Anything else is ErrUnknownSeason.
func Parse(label string) (Season, error) {
	s := Season(strings.ToLower(strings.TrimSpace(label)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeason, label)
	}
	return s, nil
}
