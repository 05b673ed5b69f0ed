package season

import "github.com/abhisek/hairharmony/internal/quiz"

// Rule forces a season when every condition on the answers holds,
// regardless of the score vector.
type Rule struct {
	Name   string
	Target Season
	Match  func(a quiz.Answers) bool
}

// overrides is evaluated in order; the first match wins. The order is
// spring, summer, autumn, winter.
var overrides = []Rule{
	{
		Name:   "fair-blonde-light-eyes",
		Target: Spring,
		Match: func(a quiz.Answers) bool {
			return a.Is(quiz.SkinTone, "fair-pink") &&
				a.Is(quiz.HairColor, "blonde") &&
				(a.Is(quiz.EyeColor, "blue") || a.Is(quiz.EyeColor, "green"))
		},
	},
	{
		Name:   "light-neutral-light-brown",
		Target: Summer,
		Match: func(a quiz.Answers) bool {
			return a.Is(quiz.SkinTone, "light-neutral") &&
				a.Is(quiz.HairColor, "light-brown") &&
				a.Is(quiz.EyeColor, "light-brown")
		},
	},
	{
		Name:   "warm-tan-dark-brown-warm-tones",
		Target: Autumn,
		Match: func(a quiz.Answers) bool {
			return a.Is(quiz.SkinTone, "warm-tan") &&
				a.Is(quiz.HairColor, "dark-brown") &&
				a.Is(quiz.ClothingColors, "warm-tones")
		},
	},
	{
		Name:   "deep-brown-black-cool-tones",
		Target: Winter,
		Match: func(a quiz.Answers) bool {
			return a.Is(quiz.SkinTone, "deep-brown") &&
				(a.Is(quiz.EyeColor, "black") || a.Is(quiz.HairColor, "black")) &&
				a.Is(quiz.ClothingColors, "cool-tones")
		},
	},
}

// Overrides returns the override rules in evaluation order.
func Overrides() []Rule {
	out := make([]Rule, len(overrides))
	copy(out, overrides)
	return out
}

// Override returns the first matching override rule.
func Override(a quiz.Answers) (Rule, bool) {
	return firstMatch(overrides, a)
}

func firstMatch(rules []Rule, a quiz.Answers) (Rule, bool) {
	for _, r := range rules {
		if r.Match(a) {
			return r, true
		}
	}
	return Rule{}, false
}
