package analysis

import "github.com/abhisek/hairharmony/internal/llm"

// VerdictSchema defines the JSON the external classifier must return. The
// season is a free string here; the closed set is enforced after decoding so
// that a differently cased label is still accepted. Confidence carries no
// bounds either: an out-of-range value falls back to the default rather than
// failing the whole verdict.
var VerdictSchema = &llm.Schema{
	Name:        "season-verdict",
	Description: "Seasonal color analysis of a quiz submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"season": map[string]any{
				"type":        "string",
				"description": "One of spring, summer, autumn, winter",
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "Confidence percentage (0-100)",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Explanation based on undertones, contrast and color harmony",
			},
		},
		"required":             []any{"season", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}
