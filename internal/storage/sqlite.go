// Package storage provides SQLite-based history of generation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/worldgen/internal/batch"
	"github.com/vovakirdan/worldgen/internal/levelgen"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run represents one recorded batch run.
type Run struct {
	ID            int64
	DataPath      string
	CatalogSource string
	WorldIDs      []int
	TotalLevels   int
	WorldsCount   int
	DryRun        bool
	CreatedAt     time.Time
}

// StoredLevel is a level record as it was written by a run.
type StoredLevel struct {
	RunID   int64
	WorldID int
	LevelID int
	Name    string
	Level   levelgen.Level
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			data_path TEXT NOT NULL,
			catalog_source TEXT NOT NULL,
			world_ids TEXT NOT NULL,
			total_levels INTEGER NOT NULL,
			worlds_count INTEGER NOT NULL,
			dry_run INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS run_levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			world_id INTEGER NOT NULL,
			level_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			payload TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_run_levels_run ON run_levels(run_id);
		CREATE INDEX IF NOT EXISTS idx_run_levels_level ON run_levels(world_id, level_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and every level it produced in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(data batch.RunData) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (data_path, catalog_source, world_ids, total_levels, worlds_count, dry_run)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		data.DataPath,
		data.CatalogSource,
		joinIDs(data.WorldIDs),
		data.TotalLevels,
		data.WorldsCount,
		boolToInt(data.DryRun),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO run_levels (run_id, world_id, level_id, name, payload) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare level insert: %w", err)
	}
	defer stmt.Close()

	for _, lvl := range data.Levels {
		payload, err := json.Marshal(lvl)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot encode level %d/%d: %w", lvl.WorldID, lvl.ID, err)
		}
		if _, err := stmt.Exec(runID, lvl.WorldID, lvl.ID, lvl.Name, string(payload)); err != nil {
			return 0, fmt.Errorf("storage: cannot save level %d/%d: %w", lvl.WorldID, lvl.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return runID, nil
}

// RecordRun implements batch.RunRecorder.
func (s *Store) RecordRun(data batch.RunData) (int64, error) {
	return s.SaveRun(data)
}

// Ensure Store implements RunRecorder
var _ batch.RunRecorder = (*Store)(nil)

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, data_path, catalog_source, world_ids, total_levels, worlds_count, dry_run, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its ID. Returns nil if no such run exists.
func (s *Store) RunByID(id int64) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, data_path, catalog_source, world_ids, total_levels, worlds_count, dry_run, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// RunLevels retrieves the levels written by a run, ordered by world then level.
func (s *Store) RunLevels(runID int64) ([]StoredLevel, error) {
	rows, err := s.db.Query(
		`SELECT run_id, world_id, level_id, name, payload
		 FROM run_levels
		 WHERE run_id = ?
		 ORDER BY world_id, level_id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run levels: %w", err)
	}
	defer rows.Close()

	var levels []StoredLevel
	for rows.Next() {
		var sl StoredLevel
		var payload string
		if err := rows.Scan(&sl.RunID, &sl.WorldID, &sl.LevelID, &sl.Name, &payload); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &sl.Level); err != nil {
			return nil, fmt.Errorf("storage: cannot decode level %d/%d: %w", sl.WorldID, sl.LevelID, err)
		}
		levels = append(levels, sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return levels, nil
}

// ClearRuns deletes every recorded run and its levels.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM run_levels"); err != nil {
		return fmt.Errorf("storage: cannot clear run levels: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var worldIDs string
	var dryRun int
	var createdAt any

	err := row.Scan(
		&r.ID,
		&r.DataPath,
		&r.CatalogSource,
		&worldIDs,
		&r.TotalLevels,
		&r.WorldsCount,
		&dryRun,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	r.WorldIDs = splitIDs(worldIDs)
	r.DryRun = dryRun != 0

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}

	return r, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func splitIDs(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		if id, err := strconv.Atoi(p); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
