package atsserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeCompare(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_compare",
		Description: "Rank multiple resumes (or revisions of one resume) against the same job description. Each resume gets a full analysis; the ranking is by overall score descending with ties keeping input order.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.CompareInput) (*mcp.CallToolResult, *ats.ComparisonResult, error) {
		if len(input.Resumes) < 2 {
			return nil, nil, errors.New("at least two resumes are required")
		}
		engine.IncrCompareRequests()
		engine.AddResumesCompared(len(input.Resumes))

		entries := make([]ats.CompareEntry, 0, len(input.Resumes))
		for i, r := range input.Resumes {
			id := r.ID
			if id == "" {
				id = defaultCompareID(i)
			}
			entries = append(entries, ats.CompareEntry{
				ID:      id,
				Resume:  engine.CleanHTML(r.Resume),
				Profile: profileFromInput(r.Profile),
			})
		}

		jd := engine.CleanHTML(input.JobDescription)
		result, err := ats.Default().Compare(ctx, entries, jd, engine.Cfg.CompareWorkers)
		if err != nil {
			return nil, nil, err
		}

		slog.Info("resume_compare: done",
			slog.Int("resumes", len(entries)),
			slog.String("best", result.BestID),
		)
		return nil, result, nil
	})
}

func defaultCompareID(i int) string {
	return fmt.Sprintf("resume-%d", i+1)
}
