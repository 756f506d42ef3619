package ats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Analysis history: a local SQLite log of past analyses so scores can be
// compared across resume revisions. Lives entirely outside the pure engine;
// Analyze never reads it.

// HistoryEntry is one recorded analysis.
type HistoryEntry struct {
	ID              int64   `json:"id"`
	Label           string  `json:"label"`
	Industry        string  `json:"industry"`
	OverallScore    int     `json:"overall_score"`
	KeywordScore    float64 `json:"keyword_score"`
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
	FormattingScore float64 `json:"formatting_score"`
	MissingCount    int     `json:"missing_count"`
	CreatedAt       string  `json:"created_at"`
}

var (
	historyPath string
	historyDB   *sql.DB
	historyOnce sync.Once
	historyErr  error
)

// SetHistoryPath configures the history database location. Empty disables
// history. Call once at startup, before any Save/List.
func SetHistoryPath(path string) { historyPath = path }

func openHistoryDB() (*sql.DB, error) {
	historyOnce.Do(func() {
		if historyPath == "" {
			historyErr = errors.New("history: disabled (no path configured)")
			return
		}
		if err := os.MkdirAll(filepath.Dir(historyPath), 0750); err != nil {
			historyErr = fmt.Errorf("history: mkdir: %w", err)
			return
		}
		db, err := sql.Open("sqlite", historyPath)
		if err != nil {
			historyErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			label            TEXT NOT NULL,
			industry         TEXT NOT NULL,
			overall_score    INTEGER NOT NULL,
			keyword_score    REAL NOT NULL,
			skills_score     REAL NOT NULL,
			experience_score REAL NOT NULL,
			education_score  REAL NOT NULL,
			formatting_score REAL NOT NULL,
			missing_count    INTEGER NOT NULL,
			created_at       TEXT NOT NULL
		)`); err != nil {
			db.Close()
			historyErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		historyDB = db
	})
	return historyDB, historyErr
}

// HistoryEnabled reports whether a history path is configured.
func HistoryEnabled() bool { return historyPath != "" }

// SaveAnalysis records one analysis under the given label.
func SaveAnalysis(_ context.Context, label string, r *AnalysisResult) (int64, error) {
	db, err := openHistoryDB()
	if err != nil {
		return 0, err
	}
	if label == "" {
		label = "untitled"
	}

	dim := dimensionIndex(r)
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO analyses (label, industry, overall_score, keyword_score, skills_score,
		 experience_score, education_score, formatting_score, missing_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		label, r.Industry, r.OverallScore,
		dim[DimensionKeyword].Score, dim[DimensionSkills].Score,
		dim[DimensionExperience].Score, dim[DimensionEducation].Score,
		dim[DimensionFormatting].Score, len(r.MissingKeywords), now,
	)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// ListAnalyses returns recent entries, newest first.
func ListAnalyses(_ context.Context, limit int) ([]HistoryEntry, error) {
	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := db.Query(
		`SELECT id, label, industry, overall_score, keyword_score, skills_score,
		 experience_score, education_score, formatting_score, missing_count, created_at
		 FROM analyses ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Label, &e.Industry, &e.OverallScore,
			&e.KeywordScore, &e.SkillsScore, &e.ExperienceScore,
			&e.EducationScore, &e.FormattingScore, &e.MissingCount, &e.CreatedAt); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
