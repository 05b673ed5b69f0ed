package season

import "github.com/abhisek/hairharmony/internal/quiz"

// Scores holds the point total for each season.
type Scores struct {
	Spring int `json:"spring"`
	Summer int `json:"summer"`
	Autumn int `json:"autumn"`
	Winter int `json:"winter"`
}

// weights is a per-answer contribution in season order.
type weights [4]int

// rubric maps scored questions to the points each recognized answer adds.
// Questions 8, 9 and 11 are not scored.
var rubric = map[quiz.QuestionID]map[string]weights{
	quiz.SkinTone: {
		"fair-pink":     {3, 0, 0, 0},
		"light-neutral": {0, 3, 0, 0},
		"warm-tan":      {0, 0, 3, 0},
		"medium-olive":  {0, 0, 2, 0},
		"deep-brown":    {0, 0, 0, 3},
	},
	quiz.HairColor: {
		"blonde":      {3, 0, 0, 0},
		"light-brown": {0, 2, 0, 0},
		"dark-brown":  {0, 0, 2, 0},
		"red":         {0, 0, 3, 0},
		"black":       {0, 0, 0, 3},
	},
	quiz.EyeColor: {
		"blue":        {2, 0, 0, 0},
		"green":       {2, 0, 0, 0},
		"light-brown": {0, 2, 0, 0},
		"dark-brown":  {0, 0, 2, 0},
		"black":       {0, 0, 0, 3},
	},
	quiz.SunReaction: {
		"burns-peels":   {2, 0, 0, 0},
		"tans-slightly": {0, 2, 0, 0},
		"tans-easily":   {0, 0, 2, 0},
		"very-tanned":   {0, 0, 0, 1},
	},
	quiz.VeinColor: {
		"blue-purple": {1, 1, 0, 1},
		"green":       {0, 0, 2, 0},
	},
	quiz.ClothingColors: {
		"soft-pastels": {2, 2, 0, 0},
		"warm-tones":   {0, 0, 3, 0},
		"deep-rich":    {0, 0, 1, 2},
		"bright-vivid": {1, 0, 0, 2},
		"cool-tones":   {0, 2, 0, 2},
	},
	quiz.Jewelry: {
		"gold":   {2, 0, 2, 0},
		"silver": {0, 2, 0, 2},
	},
	quiz.SeasonPreference: {
		"spring": {2, 0, 0, 0},
		"summer": {0, 2, 0, 0},
		"autumn": {0, 0, 2, 0},
		"winter": {0, 0, 0, 2},
	},
}

// Score accumulates the rubric over the answers. Unanswered questions and
// unrecognized values add nothing.
func Score(answers quiz.Answers) Scores {
	var total weights
	for id, table := range rubric {
		w, ok := table[answers.Get(id)]
		if !ok {
			continue
		}
		for i := range total {
			total[i] += w[i]
		}
	}
	return Scores{
		Spring: total[0],
		Summer: total[1],
		Autumn: total[2],
		Winter: total[3],
	}
}

// Of returns the points for season s, or 0 for an invalid season.
func (sc Scores) Of(s Season) int {
	switch s {
	case Spring:
		return sc.Spring
	case Summer:
		return sc.Summer
	case Autumn:
		return sc.Autumn
	case Winter:
		return sc.Winter
	}
	return 0
}

// Max returns the highest season total.
func (sc Scores) Max() int {
	m := sc.Spring
	for _, s := range order[1:] {
		if v := sc.Of(s); v > m {
			m = v
		}
	}
	return m
}

// Winner returns the first season, in fixed order, that holds the maximum.
// An all-zero vector resolves to Spring.
func (sc Scores) Winner() Season {
	m := sc.Max()
	for _, s := range order {
		if sc.Of(s) == m {
			return s
		}
	}
	return Spring
}
