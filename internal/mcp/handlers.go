package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/highrascal9098/Interview-Prep/internal/loader"
	"github.com/highrascal9098/Interview-Prep/internal/quiz"
	"github.com/highrascal9098/Interview-Prep/internal/view"
)

// handleListTopics returns the topic registry as a markdown list.
func (s *Server) handleListTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	b.WriteString("# Topics\n\n")
	for _, t := range s.registry.All() {
		fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", t.Title, t.ID, t.DataPath)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleSampleQuestions loads one topic into a scratch document and
// returns the sampled questions as text.
func (s *Server) handleSampleQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}

	t, ok := s.registry.Lookup(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Unknown topic %q. Use list_topics to see the available topics.", id,
		)), nil
	}

	count := request.GetInt("count", s.defaultCount)
	if count < 0 {
		return mcp.NewToolResultError("count must be non-negative"), nil
	}

	doc := view.NewDocument(t.ID)
	res := s.loader.LoadTopic(ctx, doc, t.ID, t.DataPath, count)
	if res.Status != loader.StatusLoaded {
		return mcp.NewToolResultError(loader.ErrorMessage(t.ID, t.DataPath, res.Err)), nil
	}

	return mcp.NewToolResultText(formatQuestions(t.Title, res)), nil
}

// formatQuestions renders the sampled bank entries as markdown, using their
// source text rather than the page HTML.
func formatQuestions(title string, res loader.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%d of %d questions\n", title, res.Rendered, res.Available)
	for i, q := range res.Questions {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", i+1, q.Question)
		if q.Topic != "" {
			fmt.Fprintf(&b, "Topic: %s\n\n", q.Topic)
		}
		b.WriteString("Solution:\n\n")
		b.WriteString(formatSolution(q.Solution))
		b.WriteString("\n")
	}
	return b.String()
}

func formatSolution(s quiz.Solution) string {
	switch s.Kind {
	case quiz.SolutionText, quiz.SolutionMarkdown:
		return s.Text + "\n"
	case quiz.SolutionCode:
		fence := "```"
		for strings.Contains(s.Code, fence) {
			fence += "`"
		}
		return fence + s.Language + "\n" + strings.TrimSuffix(s.Code, "\n") + "\n" + fence + "\n"
	default:
		return "Solution not available.\n"
	}
}
