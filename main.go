// go_ats is an ATS resume analysis MCP server.
//
// Scores resumes against job descriptions with a deterministic, explainable
// multi-dimension analysis: keyword coverage, skill alignment, experience
// relevance, education fit, and formatting compliance, plus industry
// classification and gap recommendations.
//
// Exposes six MCP tools: resume_analyze, resume_compare, industry_detect,
// keyword_suggest, ats_report, analysis_history_list.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_ats/internal/atsserver"
	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	initEngine()

	slog.Info("starting go_ats",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ats",
		Version: version,
	}, nil)

	atsserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 6))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ats",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		TaxonomyPath:         env.Str("TAXONOMY_PATH", ""),
		IndustriesPath:       env.Str("INDUSTRIES_PATH", ""),
		HistoryPath:          env.Str("ATS_HISTORY_PATH", ""),
		CompareWorkers:       env.Int("COMPARE_WORKERS", 4),
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	}
	engine.Init(c)
	engine.InitCache(c.RedisURL, engine.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	// Reference data is the one hard startup dependency: without a valid
	// taxonomy and industry table the engine cannot score anything.
	rs, err := ats.NewRuleset(c.TaxonomyPath, c.IndustriesPath)
	if err != nil {
		slog.Error("reference data load failed", slog.Any("error", err))
		os.Exit(1)
	}
	ats.SetDefault(rs)
	slog.Info("reference data loaded",
		slog.Int("skills", rs.Taxonomy.Len()),
		slog.Int("industries", len(rs.Industries.Profiles)),
	)

	ats.SetHistoryPath(c.HistoryPath)
	if c.HistoryPath != "" {
		slog.Info("analysis history enabled", slog.String("path", c.HistoryPath))
	}
}
