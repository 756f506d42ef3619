package atsserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HistoryListOutput is the structured output of analysis_history_list.
type HistoryListOutput struct {
	Entries []ats.HistoryEntry `json:"entries"`
	Total   int                `json:"total"`
}

func registerHistoryList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analysis_history_list",
		Description: "List recent resume analyses (label, industry, overall and per-dimension scores, missing keyword count), newest first. Requires history to be enabled via ATS_HISTORY_PATH.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.HistoryListInput) (*mcp.CallToolResult, *HistoryListOutput, error) {
		if !ats.HistoryEnabled() {
			return nil, nil, errors.New("analysis history is disabled (set ATS_HISTORY_PATH)")
		}
		engine.IncrHistoryRequests()

		entries, err := ats.ListAnalyses(ctx, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		return nil, &HistoryListOutput{Entries: entries, Total: len(entries)}, nil
	})
}
