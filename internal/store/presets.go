// Package store provides a SQLite-backed library of named scenario presets.
// Only inputs are stored; ledgers are always recomputed.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/growthsim/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a preset name has no entry.
var ErrNotFound = errors.New("preset not found")

// Preset is a named, saved ScenarioInput.
type Preset struct {
	Name      string
	Input     model.ScenarioInput
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Library provides preset persistence.
type Library struct {
	db  *sql.DB
	now func() time.Time
}

// DefaultPath returns the preset database location under the XDG data dir.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "growthsim", "presets.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "growthsim", "presets.db")
}

// Open opens or creates the preset database at the given path.
func Open(dbPath string) (*Library, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating preset dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening preset db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Library{db: db, now: time.Now}, nil
}

// Close closes the preset database.
func (l *Library) Close() error {
	return l.db.Close()
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("preset name is empty")
	}
	return name, nil
}

// Save validates in and stores it under name, replacing any existing preset
// while keeping its original creation time.
func (l *Library) Save(name string, in model.ScenarioInput, note string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}

	now := l.now().UTC().Format(time.RFC3339)
	_, err = l.db.Exec(`INSERT INTO presets
		(name, starting_balance, monthly_contribution, annual_rate, years, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			starting_balance = excluded.starting_balance,
			monthly_contribution = excluded.monthly_contribution,
			annual_rate = excluded.annual_rate,
			years = excluded.years,
			note = excluded.note,
			updated_at = excluded.updated_at`,
		name, in.StartingBalance, in.MonthlyContribution, in.AnnualRate, in.Years, note, now, now,
	)
	if err != nil {
		return fmt.Errorf("saving preset %q: %w", name, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(row scanner) (Preset, error) {
	var p Preset
	var note sql.NullString
	var created, updated string

	err := row.Scan(&p.Name, &p.Input.StartingBalance, &p.Input.MonthlyContribution,
		&p.Input.AnnualRate, &p.Input.Years, &note, &created, &updated)
	if err != nil {
		return p, err
	}
	if note.Valid {
		p.Note = note.String
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return p, nil
}

const selectPreset = `SELECT name, starting_balance, monthly_contribution, annual_rate, years,
	note, created_at, updated_at FROM presets`

// Get loads a preset by name. Stored inputs are re-validated before use.
func (l *Library) Get(name string) (Preset, error) {
	name, err := normalizeName(name)
	if err != nil {
		return Preset{}, err
	}

	p, err := scanPreset(l.db.QueryRow(selectPreset+" WHERE name = ?", name))
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("loading preset %q: %w", name, err)
	}
	if err := p.Input.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return p, nil
}

// List returns all presets sorted by name.
func (l *Library) List() ([]Preset, error) {
	rows, err := l.db.Query(selectPreset + " ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var presets []Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

// Delete removes a preset. Deleting a missing preset returns ErrNotFound.
func (l *Library) Delete(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	res, err := l.db.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Count returns the number of stored presets.
func (l *Library) Count() (int, error) {
	var count int
	err := l.db.QueryRow("SELECT COUNT(*) FROM presets").Scan(&count)
	return count, err
}
