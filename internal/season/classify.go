package season

import "github.com/abhisek/hairharmony/internal/quiz"

// Evaluation is the full outcome of classifying a set of answers.
type Evaluation struct {
	Season Season `json:"season"`
	Scores Scores `json:"scores"`

	// ScoreWinner is the season the rubric alone picked.
	ScoreWinner Season `json:"score_winner"`

	// Override names the override rule that replaced ScoreWinner, if any.
	Override string `json:"override,omitempty"`
}

// Classify returns the season for the answers. It always returns one of
// the four seasons.
func Classify(answers quiz.Answers) Season {
	return Evaluate(answers).Season
}

// Evaluate scores the answers, picks the winner and applies overrides.
func Evaluate(answers quiz.Answers) Evaluation {
	scores := Score(answers)
	ev := Evaluation{
		Scores:      scores,
		ScoreWinner: scores.Winner(),
	}
	ev.Season = ev.ScoreWinner

	if r, ok := Override(answers); ok {
		ev.Season = r.Target
		ev.Override = r.Name
	}
	return ev
}

// Confidence maps the winning score to a display percentage in [70, 95].
func (e Evaluation) Confidence() int {
	c := e.Scores.Max() * 8
	if c < 70 {
		return 70
	}
	if c > 95 {
		return 95
	}
	return c
}
