// Package llm talks to hosted language models for structured, single-turn
// classification. Every provider returns JSON that has already been checked
// against the request's schema, or an *Error saying why it could not.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one structured request to a model.
type Provider interface {
	// Generate returns the model's JSON answer. When req.Schema is set the
	// content is guaranteed to validate against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, before any vendor-side aliasing.
	ModelID() string
}

// Request is one system prompt and one user prompt.
type Request struct {
	System string
	Prompt string

	// Schema, when set, switches the provider to its native structured
	// output mode and validates the answer.
	Schema *Schema

	MaxTokens int

	// Temperature of zero keeps the provider default.
	Temperature float64
}

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is kebab-case, e.g. "season-verdict". Compiled validators are
	// cached by name, so two schemas must not share one.
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is why the model stopped generating.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
	StopRefused   StopReason = "refused"
)

// Response is a validated answer.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is what the vendor reports having served, which may be a dated
	// snapshot of ModelID.
	Model string
	Stop  StopReason
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is input plus output.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// reply is a vendor answer before the shared checks run.
type reply struct {
	text  string
	stop  StopReason
	usage Usage
	model string
}

// finish rejects truncated and refused answers, then validates the JSON
// against schema.
func (r reply) finish(provider string, schema *Schema) (*Response, error) {
	content := extractJSON(r.text)

	switch r.stop {
	case StopMaxTokens:
		return nil, &Error{Kind: KindTruncated, Provider: provider, Content: content}
	case StopRefused:
		return nil, &Error{Kind: KindRefused, Provider: provider, Content: content}
	}

	if err := validateResponse(schema, content); err != nil {
		err.Provider = provider
		return nil, err
	}

	return &Response{
		Content: content,
		Usage:   r.usage,
		Model:   r.model,
		Stop:    StopEnd,
	}, nil
}

// resolveModel maps a friendly alias to a vendor model ID. Unknown names
// are passed through so full IDs work too.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
