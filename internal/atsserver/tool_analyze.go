package atsserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_analyze",
		Description: "Score a resume against a job description. Returns an overall ATS compatibility score (0-100), five dimension sub-scores (keyword, skills, experience, education, formatting) with matched/missing evidence, the detected industry, missing keywords ranked by specificity, formatting issues with severity, and actionable recommendations.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.AnalyzeInput) (*mcp.CallToolResult, *ats.AnalysisResult, error) {
		if input.Resume == "" && input.Profile == nil {
			return nil, nil, errors.New("resume is required")
		}
		engine.IncrAnalyzeRequests()

		cacheKey := analyzeCacheKey(input)
		if out, ok := toolutil.CacheLoadJSON[*ats.AnalysisResult](ctx, cacheKey); ok {
			return nil, out, nil
		}

		resume := engine.CleanHTML(input.Resume)
		jd := engine.CleanHTML(input.JobDescription)

		result := ats.Default().Analyze(resume, profileFromInput(input.Profile), jd)
		toolutil.CacheStoreJSON(ctx, cacheKey, result)

		if ats.HistoryEnabled() {
			if _, err := ats.SaveAnalysis(ctx, input.Label, result); err != nil {
				slog.Warn("resume_analyze: history save failed", slog.Any("error", err))
			}
		}

		slog.Info("resume_analyze: done",
			slog.Int("score", result.OverallScore),
			slog.String("industry", result.Industry),
		)
		return nil, result, nil
	})
}

// analyzeCacheKey hashes everything the score depends on, including the
// structured profile when supplied.
func analyzeCacheKey(input engine.AnalyzeInput) string {
	profile := ""
	if input.Profile != nil {
		if data, err := json.Marshal(input.Profile); err == nil {
			profile = string(data)
		}
	}
	return engine.CacheKey("resume_analyze", input.Resume, input.JobDescription, profile)
}
