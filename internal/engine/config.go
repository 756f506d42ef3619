package engine

import (
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	TaxonomyPath   string // empty = embedded default taxonomy
	IndustriesPath string // empty = embedded default industry profiles
	HistoryPath    string // empty = analysis history disabled

	CompareWorkers int // concurrency bound for resume_compare

	RedisURL             string // empty = L2 cache disabled
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.CompareWorkers < 1 {
		c.CompareWorkers = 4
	}
	cfg = c
	Cfg = &cfg
}
