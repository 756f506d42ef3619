package atsserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerKeywordSuggest(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "keyword_suggest",
		Description: "Suggest keywords to add to a resume: job-description keywords absent from the resume, ranked rarest-first (industry-distinctive terms before generic ones).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.KeywordSuggestInput) (*mcp.CallToolResult, *engine.KeywordSuggestOutput, error) {
		if input.JobDescription == "" {
			return nil, nil, errors.New("job_description is required")
		}
		engine.IncrKeywordSuggestRequests()

		limit := input.Limit
		if limit <= 0 || limit > 50 {
			limit = 10
		}

		rs := ats.Default()
		result := rs.Analyze(engine.CleanHTML(input.Resume), nil, engine.CleanHTML(input.JobDescription))

		keywords := result.MissingKeywords
		if len(keywords) > limit {
			keywords = keywords[:limit]
		}
		return nil, &engine.KeywordSuggestOutput{
			Industry: result.Industry,
			Keywords: keywords,
		}, nil
	})
}
