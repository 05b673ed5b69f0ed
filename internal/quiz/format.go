package quiz

import "strings"

// FormatLabeled renders answers as a human-readable labeled list, one
// "Label: value" line per answered question in quiz order. This is the
// form sent to the external classifier.
func FormatLabeled(a Answers) string {
	var b strings.Builder
	for _, q := range questions {
		v := a.Get(q.ID)
		if v == "" {
			continue
		}
		b.WriteString(q.Label)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteByte('\n')
	}
	return b.String()
}
