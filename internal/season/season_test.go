package season

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/abhisek/hairharmony/internal/quiz"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Season
		wantErr bool
	}{
		{"spring", Spring, false},
		{"Summer", Summer, false},
		{"  AUTUMN\n", Autumn, false},
		{"winter", Winter, false},
		{"fall", "", true},
		{"spring.", "", true},
		{"the answer is winter", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownSeason) {
				t.Errorf("Parse(%q) err = %v, want ErrUnknownSeason", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAll_Order(t *testing.T) {
	want := []Season{Spring, Summer, Autumn, Winter}
	got := All()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if Autumn.Title() != "Autumn" {
		t.Errorf("Title = %q", Autumn.Title())
	}
}

func TestScore_SingleAnswers(t *testing.T) {
	tests := []struct {
		q     quiz.QuestionID
		value string
		want  Scores
	}{
		{quiz.SkinTone, "fair-pink", Scores{Spring: 3}},
		{quiz.SkinTone, "light-neutral", Scores{Summer: 3}},
		{quiz.SkinTone, "warm-tan", Scores{Autumn: 3}},
		{quiz.SkinTone, "medium-olive", Scores{Autumn: 2}},
		{quiz.SkinTone, "deep-brown", Scores{Winter: 3}},
		{quiz.HairColor, "blonde", Scores{Spring: 3}},
		{quiz.HairColor, "light-brown", Scores{Summer: 2}},
		{quiz.HairColor, "dark-brown", Scores{Autumn: 2}},
		{quiz.HairColor, "red", Scores{Autumn: 3}},
		{quiz.HairColor, "black", Scores{Winter: 3}},
		{quiz.EyeColor, "blue", Scores{Spring: 2}},
		{quiz.EyeColor, "green", Scores{Spring: 2}},
		{quiz.EyeColor, "light-brown", Scores{Summer: 2}},
		{quiz.EyeColor, "dark-brown", Scores{Autumn: 2}},
		{quiz.EyeColor, "black", Scores{Winter: 3}},
		{quiz.SunReaction, "burns-peels", Scores{Spring: 2}},
		{quiz.SunReaction, "tans-slightly", Scores{Summer: 2}},
		{quiz.SunReaction, "tans-easily", Scores{Autumn: 2}},
		{quiz.SunReaction, "very-tanned", Scores{Winter: 1}},
		{quiz.VeinColor, "blue-purple", Scores{Spring: 1, Summer: 1, Winter: 1}},
		{quiz.VeinColor, "green", Scores{Autumn: 2}},
		{quiz.VeinColor, "hard-to-tell", Scores{}},
		{quiz.ClothingColors, "soft-pastels", Scores{Spring: 2, Summer: 2}},
		{quiz.ClothingColors, "warm-tones", Scores{Autumn: 3}},
		{quiz.ClothingColors, "deep-rich", Scores{Autumn: 1, Winter: 2}},
		{quiz.ClothingColors, "bright-vivid", Scores{Spring: 1, Winter: 2}},
		{quiz.ClothingColors, "cool-tones", Scores{Summer: 2, Winter: 2}},
		{quiz.Jewelry, "gold", Scores{Spring: 2, Autumn: 2}},
		{quiz.Jewelry, "silver", Scores{Summer: 2, Winter: 2}},
		{quiz.Jewelry, "mixed", Scores{}},
		{quiz.SeasonPreference, "spring", Scores{Spring: 2}},
		{quiz.SeasonPreference, "summer", Scores{Summer: 2}},
		{quiz.SeasonPreference, "autumn", Scores{Autumn: 2}},
		{quiz.SeasonPreference, "winter", Scores{Winter: 2}},
		{quiz.ColorChange, "full-color-change", Scores{}},
		{quiz.ColorFamily, "blue-black", Scores{}},
		{quiz.Considerations, "winter", Scores{}},
	}
	for _, tt := range tests {
		got := Score(quiz.Answers{tt.q: tt.value})
		if got != tt.want {
			t.Errorf("Score(%d=%q) = %+v, want %+v", tt.q, tt.value, got, tt.want)
		}
	}
}

func TestScore_Accumulates(t *testing.T) {
	a := quiz.Answers{
		quiz.SkinTone:         "fair-pink",
		quiz.HairColor:        "blonde",
		quiz.EyeColor:         "blue",
		quiz.SunReaction:      "burns-peels",
		quiz.VeinColor:        "blue-purple",
		quiz.ClothingColors:   "soft-pastels",
		quiz.Jewelry:          "gold",
		quiz.SeasonPreference: "spring",
	}
	want := Scores{Spring: 17, Summer: 3, Autumn: 2, Winter: 1}
	if got := Score(a); got != want {
		t.Fatalf("Score = %+v, want %+v", got, want)
	}
}

func TestWinner_TieBreakOrder(t *testing.T) {
	tests := []struct {
		scores Scores
		want   Season
	}{
		{Scores{}, Spring},
		{Scores{Spring: 2, Summer: 2, Autumn: 2, Winter: 2}, Spring},
		{Scores{Summer: 4, Autumn: 4, Winter: 4}, Summer},
		{Scores{Autumn: 4, Winter: 4}, Autumn},
		{Scores{Spring: 1, Winter: 5}, Winter},
	}
	for _, tt := range tests {
		if got := tt.scores.Winner(); got != tt.want {
			t.Errorf("%+v.Winner() = %q, want %q", tt.scores, got, tt.want)
		}
	}
}

func TestClassify_Examples(t *testing.T) {
	tests := []struct {
		name    string
		answers quiz.Answers
		want    Season
	}{
		{
			name:    "empty input defaults to spring",
			answers: quiz.Answers{},
			want:    Spring,
		},
		{
			name:    "nil input defaults to spring",
			answers: nil,
			want:    Spring,
		},
		{
			name: "spring override over cool answers",
			answers: quiz.Answers{
				quiz.SkinTone:       "fair-pink",
				quiz.HairColor:      "blonde",
				quiz.EyeColor:       "blue",
				quiz.ClothingColors: "cool-tones",
				quiz.Jewelry:        "silver",
			},
			want: Spring,
		},
		{
			name: "winter by score without cool tones",
			answers: quiz.Answers{
				quiz.SkinTone:  "deep-brown",
				quiz.HairColor: "black",
				quiz.EyeColor:  "black",
			},
			want: Winter,
		},
		{
			name: "unrecognized value contributes nothing",
			answers: quiz.Answers{
				quiz.SkinTone:  "unknown-value",
				quiz.HairColor: "blonde",
			},
			want: Spring,
		},
		{
			name:    "season preference alone",
			answers: quiz.Answers{quiz.SeasonPreference: "autumn"},
			want:    Autumn,
		},
		{
			name:    "single weak winter point",
			answers: quiz.Answers{quiz.SunReaction: "very-tanned"},
			want:    Winter,
		},
		{
			name: "summer and autumn tie resolves to summer",
			answers: quiz.Answers{
				quiz.HairColor: "light-brown",
				quiz.EyeColor:  "dark-brown",
			},
			want: Summer,
		},
		{
			name: "values are matched exactly",
			answers: quiz.Answers{
				quiz.HairColor:        "Blonde",
				quiz.SeasonPreference: "winter",
			},
			want: Winter,
		},
		{
			name: "fair skin without blonde hair follows the score",
			answers: quiz.Answers{
				quiz.SkinTone:       "fair-pink",
				quiz.HairColor:      "light-brown",
				quiz.EyeColor:       "light-brown",
				quiz.SunReaction:    "tans-slightly",
				quiz.ClothingColors: "cool-tones",
			},
			want: Summer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.answers); got != tt.want {
				t.Errorf("Classify = %q, want %q (scores %+v)", got, tt.want, Score(tt.answers))
			}
		})
	}
}

func TestEvaluate_OverridesBeatScores(t *testing.T) {
	tests := []struct {
		name        string
		answers     quiz.Answers
		scoreWinner Season
		want        Season
		rule        string
	}{
		{
			name: "spring",
			answers: quiz.Answers{
				quiz.SkinTone:         "fair-pink",
				quiz.HairColor:        "blonde",
				quiz.EyeColor:         "green",
				quiz.SunReaction:      "tans-easily",
				quiz.VeinColor:        "green",
				quiz.ClothingColors:   "warm-tones",
				quiz.Jewelry:          "gold",
				quiz.SeasonPreference: "autumn",
			},
			scoreWinner: Autumn,
			want:        Spring,
			rule:        "fair-blonde-light-eyes",
		},
		{
			name: "summer",
			answers: quiz.Answers{
				quiz.SkinTone:         "light-neutral",
				quiz.HairColor:        "light-brown",
				quiz.EyeColor:         "light-brown",
				quiz.SunReaction:      "tans-easily",
				quiz.VeinColor:        "green",
				quiz.ClothingColors:   "warm-tones",
				quiz.Jewelry:          "gold",
				quiz.SeasonPreference: "autumn",
			},
			scoreWinner: Autumn,
			want:        Summer,
			rule:        "light-neutral-light-brown",
		},
		{
			name: "autumn",
			answers: quiz.Answers{
				quiz.SkinTone:       "warm-tan",
				quiz.HairColor:      "dark-brown",
				quiz.ClothingColors: "warm-tones",
			},
			scoreWinner: Autumn,
			want:        Autumn,
			rule:        "warm-tan-dark-brown-warm-tones",
		},
		{
			name: "winter via black hair",
			answers: quiz.Answers{
				quiz.SkinTone:         "deep-brown",
				quiz.HairColor:        "black",
				quiz.EyeColor:         "light-brown",
				quiz.SunReaction:      "tans-slightly",
				quiz.VeinColor:        "blue-purple",
				quiz.ClothingColors:   "cool-tones",
				quiz.Jewelry:          "silver",
				quiz.SeasonPreference: "summer",
			},
			scoreWinner: Summer,
			want:        Winter,
			rule:        "deep-brown-black-cool-tones",
		},
		{
			name: "winter via black eyes",
			answers: quiz.Answers{
				quiz.SkinTone:       "deep-brown",
				quiz.HairColor:      "red",
				quiz.EyeColor:       "black",
				quiz.ClothingColors: "cool-tones",
			},
			scoreWinner: Winter,
			want:        Winter,
			rule:        "deep-brown-black-cool-tones",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Evaluate(tt.answers)
			if ev.ScoreWinner != tt.scoreWinner {
				t.Errorf("ScoreWinner = %q, want %q (scores %+v)", ev.ScoreWinner, tt.scoreWinner, ev.Scores)
			}
			if ev.Season != tt.want {
				t.Errorf("Season = %q, want %q", ev.Season, tt.want)
			}
			if ev.Override != tt.rule {
				t.Errorf("Override = %q, want %q", ev.Override, tt.rule)
			}
		})
	}
}

func TestEvaluate_NoOverride(t *testing.T) {
	ev := Evaluate(quiz.Answers{
		quiz.SkinTone:  "deep-brown",
		quiz.HairColor: "black",
		quiz.EyeColor:  "black",
	})
	if ev.Override != "" {
		t.Errorf("Override = %q, want none", ev.Override)
	}
	if ev.Scores != (Scores{Winter: 9}) {
		t.Errorf("Scores = %+v, want winter 9", ev.Scores)
	}
}

func TestOverrides_Order(t *testing.T) {
	rules := Overrides()
	want := []Season{Spring, Summer, Autumn, Winter}
	if len(rules) != len(want) {
		t.Fatalf("got %d rules, want %d", len(rules), len(want))
	}
	for i, r := range rules {
		if r.Target != want[i] {
			t.Errorf("rule %d (%s) targets %q, want %q", i, r.Name, r.Target, want[i])
		}
	}
}

func TestFirstMatch_Order(t *testing.T) {
	always := func(quiz.Answers) bool { return true }
	rules := []Rule{
		{Name: "a", Target: Autumn, Match: always},
		{Name: "b", Target: Winter, Match: always},
	}
	r, ok := firstMatch(rules, nil)
	if !ok || r.Name != "a" {
		t.Fatalf("firstMatch = %+v, %v; want rule a", r, ok)
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		scores Scores
		want   int
	}{
		{Scores{}, 70},
		{Scores{Winter: 9}, 72},
		{Scores{Spring: 11}, 88},
		{Scores{Spring: 17}, 95},
	}
	for _, tt := range tests {
		got := Evaluation{Scores: tt.scores}.Confidence()
		if got != tt.want {
			t.Errorf("Confidence(%+v) = %d, want %d", tt.scores, got, tt.want)
		}
	}
}

// randomAnswers draws values from each question's vocabulary plus an
// unrecognized value and the empty answer.
func randomAnswers(r *rand.Rand) quiz.Answers {
	a := quiz.Answers{}
	for _, q := range quiz.Questions() {
		choices := []string{"", "not-a-real-option"}
		for _, o := range q.Options {
			choices = append(choices, o.Value)
		}
		if q.Kind == quiz.KindText {
			choices = append(choices, "winter please", "spring")
		}
		if v := choices[r.IntN(len(choices))]; v != "" {
			a[q.ID] = v
		}
	}
	return a
}

func TestClassify_TotalAndDeterministic(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5000; i++ {
		a := randomAnswers(r)
		got := Classify(a)
		if !got.Valid() {
			t.Fatalf("Classify(%v) = %q, not a season", a, got)
		}
		if again := Classify(a.Clone()); again != got {
			t.Fatalf("Classify(%v) not deterministic: %q then %q", a, got, again)
		}
		sc := Score(a)
		if sc.Spring < 0 || sc.Summer < 0 || sc.Autumn < 0 || sc.Winter < 0 {
			t.Fatalf("negative score %+v", sc)
		}
	}
}

func TestClassify_IgnoresUnscoredQuestions(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	unscored := []quiz.QuestionID{quiz.ColorChange, quiz.ColorFamily, quiz.Considerations}
	for i := 0; i < 2000; i++ {
		a := randomAnswers(r)
		b := a.Clone()
		for _, id := range unscored {
			if r.IntN(2) == 0 {
				delete(b, id)
			} else {
				b[id] = "something else"
			}
		}
		if Classify(a) != Classify(b) {
			t.Fatalf("answers differing only in questions 8, 9, 11 classified differently:\n%v\n%v", a, b)
		}
	}
}

func TestClassify_Concurrent(t *testing.T) {
	a := quiz.Answers{
		quiz.SkinTone:  "deep-brown",
		quiz.HairColor: "black",
		quiz.EyeColor:  "black",
	}
	var wg sync.WaitGroup
	errs := make(chan Season, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Classify(a); got != Winter {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Classify = %q, want winter", got)
	}
}
