// Package mcptool exposes the season classifier as MCP tools.
//
// Each tool is a struct with its dependencies injected via constructor,
// a Definition returning the mcp.Tool schema, and a Handle method.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/hairharmony/internal/analysis"
	"github.com/abhisek/hairharmony/internal/quiz"
	"github.com/abhisek/hairharmony/internal/season"
)

// ClassifyTool handles the classify_season MCP tool.
type ClassifyTool struct {
	svc *analysis.Service
}

// NewClassifyTool creates a ClassifyTool. svc is used only for full
// analyses; the default answer comes straight from the rules engine.
func NewClassifyTool(svc *analysis.Service) *ClassifyTool {
	return &ClassifyTool{svc: svc}
}

// evaluation is the rules engine outcome as returned to the client.
type evaluation struct {
	Season      season.Season `json:"season"`
	Confidence  int           `json:"confidence"`
	Scores      season.Scores `json:"scores"`
	ScoreWinner season.Season `json:"score_winner"`
	Override    string        `json:"override,omitempty"`
}

// Definition returns the MCP tool definition for classify_season.
func (t *ClassifyTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Classify a Hair Harmony quiz submission into a color season (spring, summer, autumn, winter). " +
				"Pass answers as q1..q11 using the option values from list_questions. Any subset may be given.",
		),
	}
	for _, q := range quiz.Questions() {
		name := paramName(q.ID)
		props := []mcp.PropertyOption{mcp.Description(q.Title)}
		if q.Kind == quiz.KindSingleChoice {
			values := make([]string, len(q.Options))
			for i, o := range q.Options {
				values[i] = o.Value
			}
			props = append(props, mcp.Enum(values...))
		}
		opts = append(opts, mcp.WithString(name, props...))
	}
	opts = append(opts, mcp.WithBoolean("full",
		mcp.Description("Run the full analysis, asking the configured language model first. Defaults to false."),
	))
	return mcp.NewTool("classify_season", opts...)
}

// Handle processes the classify_season tool call.
func (t *ClassifyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers := make(quiz.Answers)
	for _, q := range quiz.Questions() {
		if v := req.GetString(paramName(q.ID), ""); v != "" {
			answers[q.ID] = v
		}
	}
	answers = answers.Normalize()

	var out any
	if boolArg(req, "full", false) && t.svc != nil {
		out = t.svc.Analyze(ctx, answers)
	} else {
		ev := season.Evaluate(answers)
		out = evaluation{
			Season:      ev.Season,
			Confidence:  ev.Confidence(),
			Scores:      ev.Scores,
			ScoreWinner: ev.ScoreWinner,
			Override:    ev.Override,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func paramName(id quiz.QuestionID) string {
	return "q" + strconv.Itoa(int(id))
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}
