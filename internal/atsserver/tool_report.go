package atsserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerATSReport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_report",
		Description: "Run a full analysis and render it as a markdown report: executive summary, score breakdown, matched/missing skills by category, formatting issues, recommendations, and an action plan ordered by impact.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.AnalyzeInput) (*mcp.CallToolResult, *engine.ReportOutput, error) {
		if input.Resume == "" && input.Profile == nil {
			return nil, nil, errors.New("resume is required")
		}
		engine.IncrReportRequests()

		resume := engine.CleanHTML(input.Resume)
		jd := engine.CleanHTML(input.JobDescription)
		result := ats.Default().Analyze(resume, profileFromInput(input.Profile), jd)

		return nil, &engine.ReportOutput{
			Label:        input.Label,
			OverallScore: result.OverallScore,
			Report:       ats.RenderReport(input.Label, result),
		}, nil
	})
}
