package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// validators holds compiled schemas keyed by Schema.Name.
var validators sync.Map // string -> *jsonschema.Schema

// validateResponse checks raw against schema. A nil schema accepts
// anything.
func validateResponse(schema *Schema, raw json.RawMessage) *Error {
	if schema == nil {
		return nil
	}
	invalid := func(format string, args ...any) *Error {
		return &Error{Kind: KindInvalid, Content: raw, Err: fmt.Errorf(format, args...)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid("not JSON: %w", err)
	}
	v, err := compiled(schema)
	if err != nil {
		return invalid("schema %q: %w", schema.Name, err)
	}
	if err := v.Validate(doc); err != nil {
		return invalid("does not match %q: %w", schema.Name, err)
	}
	return nil
}

func compiled(schema *Schema) (*jsonschema.Schema, error) {
	if v, ok := validators.Load(schema.Name); ok {
		return v.(*jsonschema.Schema), nil
	}

	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, err
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	v, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	validators.Store(schema.Name, v)
	return v, nil
}

// extractJSON pulls the JSON object out of a model answer. Chat models
// wrap JSON in markdown fences or a sentence of preamble even when told
// not to; both are dropped. Text with no object is returned trimmed so
// validation reports it.
func extractJSON(text string) json.RawMessage {
	s := strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(s, "```"); ok {
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		} else {
			rest = strings.TrimPrefix(rest, "json")
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), "```"))
	}
	if strings.HasPrefix(s, "{") {
		return json.RawMessage(s)
	}
	start, end := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return json.RawMessage(s[start : end+1])
	}
	return json.RawMessage(s)
}
