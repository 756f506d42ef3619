package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AnalyzeRequests        atomic.Int64
	CompareRequests        atomic.Int64
	ResumesCompared        atomic.Int64
	IndustryDetectRequests atomic.Int64
	KeywordSuggestRequests atomic.Int64
	ReportRequests         atomic.Int64
	HistoryRequests        atomic.Int64
}

func IncrAnalyzeRequests()        { metrics.AnalyzeRequests.Add(1) }
func IncrCompareRequests()        { metrics.CompareRequests.Add(1) }
func AddResumesCompared(n int)    { metrics.ResumesCompared.Add(int64(n)) }
func IncrIndustryDetectRequests() { metrics.IndustryDetectRequests.Add(1) }
func IncrKeywordSuggestRequests() { metrics.KeywordSuggestRequests.Add(1) }
func IncrReportRequests()         { metrics.ReportRequests.Add(1) }
func IncrHistoryRequests()        { metrics.HistoryRequests.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"analyze_requests":         metrics.AnalyzeRequests.Load(),
		"compare_requests":         metrics.CompareRequests.Load(),
		"resumes_compared":         metrics.ResumesCompared.Load(),
		"industry_detect_requests": metrics.IndustryDetectRequests.Load(),
		"keyword_suggest_requests": metrics.KeywordSuggestRequests.Load(),
		"report_requests":          metrics.ReportRequests.Load(),
		"history_requests":         metrics.HistoryRequests.Load(),
		"cache_hits":               hits,
		"cache_misses":             misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	snap := GetMetrics()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s %d\n", k, snap[k])
	}
	return b.String()
}
