package quiz

import "github.com/abhisek/hairharmony/internal/analysis"

// analysisDoneMsg is sent when the analysis of the submitted answers has
// finished. SaveErr is set when the result could not be stored.
type analysisDoneMsg struct {
	Result  *analysis.Result
	SaveErr error
}
