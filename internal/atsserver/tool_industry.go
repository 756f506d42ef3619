package atsserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// IndustryDetectOutput is the structured output of industry_detect.
type IndustryDetectOutput struct {
	Industry string             `json:"industry"`
	Votes    []ats.IndustryVote `json:"votes"`
}

func registerIndustryDetect(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "industry_detect",
		Description: "Classify a job description into one of the fixed industries (software-engineering, data-science, marketing, product-management, sales, design, finance, hr), or 'general' when nothing matches. Returns the full specificity-weighted vote tally.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.IndustryDetectInput) (*mcp.CallToolResult, *IndustryDetectOutput, error) {
		if input.JobDescription == "" {
			return nil, nil, errors.New("job_description is required")
		}
		engine.IncrIndustryDetectRequests()

		rs := ats.Default()
		doc := ats.Normalize(engine.CleanHTML(input.JobDescription), rs.Phrases)
		industry, votes := rs.Industries.DetectIndustry(doc)

		return nil, &IndustryDetectOutput{Industry: industry, Votes: votes}, nil
	})
}
