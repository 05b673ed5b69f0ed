package quiz

import (
	"sort"
	"strconv"
	"strings"
)

// Answers maps question IDs to the respondent's answer values. Any subset
// of questions may be present.
type Answers map[QuestionID]string

// Get returns the trimmed answer for id, or "" when unanswered.
func (a Answers) Get(id QuestionID) string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a[id])
}

// Option returns the recognized option for a single-choice answer. The
// zero Option and false are returned when the question is unanswered, is a
// text question, or the value is not in its vocabulary.
func (a Answers) Option(id QuestionID) (Option, bool) {
	v := a.Get(id)
	if v == "" {
		return Option{}, false
	}
	q, ok := Lookup(id)
	if !ok {
		return Option{}, false
	}
	return q.Option(v)
}

// Is reports whether the answer to id is the recognized value v.
func (a Answers) Is(id QuestionID, v string) bool {
	o, ok := a.Option(id)
	return ok && o.Value == v
}

// Clone returns a shallow copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Normalize returns a copy with values trimmed, and with empty values and
// unknown question IDs dropped. Unrecognized values for known questions
// are kept: they are valid input that simply scores nothing.
func (a Answers) Normalize() Answers {
	out := make(Answers, len(a))
	for id, v := range a {
		if !id.Valid() {
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out[id] = v
	}
	return out
}

// Missing returns the required questions that lack a recognized answer,
// in question order.
func (a Answers) Missing() []QuestionID {
	var out []QuestionID
	for _, q := range questions {
		if !q.Required {
			continue
		}
		if q.Kind == KindText {
			if a.Get(q.ID) == "" {
				out = append(out, q.ID)
			}
			continue
		}
		if _, ok := a.Option(q.ID); !ok {
			out = append(out, q.ID)
		}
	}
	return out
}

// Fingerprint returns a stable string for the normalized answers, suitable
// as a cache key. The free-text answer is included since the external
// classifier sees it.
func (a Answers) Fingerprint() string {
	n := a.Normalize()
	ids := make([]int, 0, len(n))
	for id := range n {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	var b strings.Builder
	for _, id := range ids {
		b.WriteString(strconv.Itoa(id))
		b.WriteByte('=')
		b.WriteString(n[QuestionID(id)])
		b.WriteByte(';')
	}
	return b.String()
}

// ParseAnswers converts a JSON-style object keyed by question number
// ("1".."11") into Answers. Keys that are not known question numbers are
// ignored.
func ParseAnswers(raw map[string]string) Answers {
	out := make(Answers, len(raw))
	for k, v := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			continue
		}
		id := QuestionID(n)
		if !id.Valid() {
			continue
		}
		out[id] = v
	}
	return out.Normalize()
}

// ToMap is the inverse of ParseAnswers.
func (a Answers) ToMap() map[string]string {
	out := make(map[string]string, len(a))
	for id, v := range a {
		out[strconv.Itoa(int(id))] = v
	}
	return out
}
