package ats

// Package-level ruleset singleton, set from main.go. The tool layer reads
// it; the engine functions themselves always take the ruleset explicitly.
var defaultRuleset *Ruleset

// SetDefault sets the package-level ruleset instance.
func SetDefault(rs *Ruleset) { defaultRuleset = rs }

// Default returns the package-level ruleset instance (may be nil before
// startup wiring).
func Default() *Ruleset { return defaultRuleset }
