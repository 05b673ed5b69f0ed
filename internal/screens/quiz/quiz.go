package quiz

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/hairharmony/internal/analysis"
	qz "github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/router"
	"github.com/abhisek/hairharmony/internal/screen"
	"github.com/abhisek/hairharmony/internal/screens/result"
	"github.com/abhisek/hairharmony/internal/store"
	"github.com/abhisek/hairharmony/internal/ui/components"
	"github.com/abhisek/hairharmony/internal/ui/layout"
)

// considerationsLimit caps the free-text answer.
const considerationsLimit = 280

// QuizScreen walks through the questionnaire one question at a time and
// runs the analysis once the last question is answered.
type QuizScreen struct {
	svc     *analysis.Service
	results store.ResultRepo

	// clientKey identifies this run when the result is saved.
	clientKey string

	questions []qz.Question
	idx       int
	answers   qz.Answers

	choice    components.ChoiceList
	text      components.TextInput
	analyzing bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. results may be nil.
func New(svc *analysis.Service, results store.ResultRepo) *QuizScreen {
	s := &QuizScreen{
		svc:       svc,
		results:   results,
		clientKey: "tui-" + uuid.NewString(),
		questions: qz.Questions(),
		answers:   qz.Answers{},
	}
	s.load()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.current().Kind == qz.KindText {
		return s.text.Init()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return "Color Season Quiz"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Question %d/%d", s.idx+1, len(s.questions))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.analyzing {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	if s.current().Kind == qz.KindSingleChoice {
		hints = append([]layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "A-E", Description: "Pick"},
		}, hints...)
	}
	if s.idx > 0 {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+B", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *QuizScreen) current() qz.Question {
	return s.questions[s.idx]
}

// load builds the input component for the current question, prefilled
// with any earlier answer.
func (s *QuizScreen) load() {
	q := s.current()
	prev := s.answers.Get(q.ID)
	if q.Kind == qz.KindText {
		s.text = components.NewTextInput("Anything else? (optional)", prev, considerationsLimit)
		return
	}
	opts := make([]components.Choice, len(q.Options))
	for i, o := range q.Options {
		opts[i] = components.Choice{Value: o.Value, Label: o.Label}
	}
	s.choice = components.NewChoiceList(q.Title, opts, prev)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, ok := msg.(analysisDoneMsg); ok {
		return s, s.showResult(done)
	}
	if s.analyzing {
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "ctrl+b" {
		return s, s.back()
	}

	q := s.current()
	if q.Kind == qz.KindText {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.answers[q.ID] = s.text.Value()
			return s, s.advance()
		}
		var cmd tea.Cmd
		s.text, cmd = s.text.Update(msg)
		return s, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "left" {
		return s, s.back()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		s.answers[q.ID] = s.choice.Value()
		return s, s.advance()
	}
	return s, cmd
}

func (s *QuizScreen) back() tea.Cmd {
	if s.idx == 0 {
		return nil
	}
	s.idx--
	s.load()
	return s.Init()
}

// advance moves to the next question, or starts the analysis after the last.
func (s *QuizScreen) advance() tea.Cmd {
	if s.idx+1 < len(s.questions) {
		s.idx++
		s.load()
		return s.Init()
	}
	s.analyzing = true
	return s.analyze()
}

func (s *QuizScreen) analyze() tea.Cmd {
	svc := s.svc
	repo := s.results
	key := s.clientKey
	answers := s.answers.Clone()

	return func() tea.Msg {
		ctx := context.Background()
		res := svc.Analyze(ctx, answers)

		var saveErr error
		if repo != nil {
			rec, err := analysis.NewRecord(key, answers, res)
			if err == nil {
				err = repo.Save(ctx, rec)
			}
			saveErr = err
		}
		return analysisDoneMsg{Result: res, SaveErr: saveErr}
	}
}

func (s *QuizScreen) showResult(done analysisDoneMsg) tea.Cmd {
	svc, repo := s.svc, s.results
	retake := func() screen.Screen { return New(svc, repo) }

	var guide string
	if svc != nil && svc.Guides() != nil {
		guide = svc.Guides().CheckoutURL()
	}

	rs := result.New(done.Result, result.Options{
		Retake:      retake,
		CheckoutURL: guide,
		SaveErr:     done.SaveErr,
	})
	return router.Replace(rs)
}

func (s *QuizScreen) View(width, height int) string {
	if s.analyzing {
		return renderAnalyzing(width, height)
	}
	return s.renderQuestion(width, height)
}
