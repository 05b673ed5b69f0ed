package llm

import "context"

// PurposeSeasonAnalysis labels the quiz classification call.
const PurposeSeasonAnalysis = "season-analysis"

const unlabeledPurpose = "unlabeled"

type purposeKey struct{}

// WithPurpose labels the LLM calls made under ctx. The label is stored on
// every request event and is what `llm stats` groups by.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unlabeled".
func PurposeFrom(ctx context.Context) string {
	if p, _ := ctx.Value(purposeKey{}).(string); p != "" {
		return p
	}
	return unlabeledPurpose
}
