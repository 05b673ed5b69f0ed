package mcptool

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/hairharmony/internal/quiz"
)

// QuestionsTool handles the list_questions MCP tool.
type QuestionsTool struct{}

// NewQuestionsTool creates a QuestionsTool.
func NewQuestionsTool() *QuestionsTool {
	return &QuestionsTool{}
}

// Definition returns the MCP tool definition for list_questions.
func (t *QuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_questions",
		mcp.WithDescription(
			"List the Hair Harmony quiz questions with the option values classify_season accepts.",
		),
	)
}

// Handle processes the list_questions tool call.
func (t *QuestionsTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("## Hair Harmony Quiz\n")
	for _, q := range quiz.Questions() {
		sb.WriteString(fmt.Sprintf("\n### q%d: %s\n\n", q.ID, q.Title))
		if q.Kind == quiz.KindText {
			sb.WriteString("- free text\n")
			continue
		}
		for _, o := range q.Options {
			sb.WriteString(fmt.Sprintf("- `%s`: %s\n", o.Value, o.Label))
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}
