// Package storage persists simulation runs: a directory per run with
// JSON metadata and time-by-annulus CSV tables, plus an sqlite store of
// embryo snapshots for frame-by-frame inspection.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"pebbledisk/internal/accrete"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one saved run.
type RunMetadata struct {
	ID                string             `json:"id"`
	Timestamp         time.Time          `json:"timestamp"`
	Seed              int64              `json:"seed"`
	InnerAU           float64            `json:"inner_au"`
	OuterAU           float64            `json:"outer_au"`
	Annuli            int                `json:"annuli"`
	MaxSurfaceDensity float64            `json:"max_surface_density"`
	StartTime         float64            `json:"start_time"`
	Duration          float64            `json:"duration"`
	Dt                float64            `json:"dt"`
	Steps             int                `json:"steps"`
	Metrics           map[string]float64 `json:"metrics"`
}

// NewRunID mints a short unique run identifier.
func NewRunID() string {
	return uuid.NewString()[:8]
}

// Save writes metadata.json, flux.csv (inward pebble flux arriving at
// each annulus) and sigma.csv (planetesimal surface density per
// annulus), one row per step, columns keyed by annulus center [AU].
func (s *Store) Save(meta RunMetadata, annuli []float64, reports []*accrete.StepReport, sigma [][]float64) error {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	writeTable := func(name string, row func(i int) []float64) error {
		f, err := os.Create(filepath.Join(runDir, name))
		if err != nil {
			return err
		}
		defer f.Close()

		w := csv.NewWriter(f)
		defer w.Flush()

		header := []string{"time"}
		for _, a := range annuli {
			header = append(header, strconv.FormatFloat(a, 'g', 8, 64))
		}
		if err := w.Write(header); err != nil {
			return err
		}
		for i, r := range reports {
			record := []string{strconv.FormatFloat(r.Time, 'f', 2, 64)}
			for _, v := range row(i) {
				record = append(record, strconv.FormatFloat(v, 'g', 8, 64))
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return w.Error()
	}

	if err := writeTable("flux.csv", func(i int) []float64 { return reports[i].IncomingFlux }); err != nil {
		return err
	}
	if len(sigma) == len(reports) {
		if err := writeTable("sigma.csv", func(i int) []float64 { return sigma[i] }); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// List returns metadata for all saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Table is a time-by-annulus series read back from a run directory.
type Table struct {
	Annuli []float64 // column keys [AU]
	Times  []float64
	Values [][]float64 // [row][annulus]
}

// NearestRow returns the index of the row closest in time to t.
func (tb *Table) NearestRow(t float64) int {
	best := 0
	for i, ti := range tb.Times {
		if abs(ti-t) < abs(tb.Times[best]-t) {
			best = i
		}
	}
	return best
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// LoadTable reads one of a run's CSV tables (e.g. "flux.csv").
func (s *Store) LoadTable(runID, name string) (*Table, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 || len(records[0]) < 2 {
		return nil, fmt.Errorf("storage: %s in run %s is empty or malformed", name, runID)
	}

	tb := &Table{}
	for _, col := range records[0][1:] {
		a, err := strconv.ParseFloat(col, 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad annulus column %q: %w", col, err)
		}
		tb.Annuli = append(tb.Annuli, a)
	}
	for _, rec := range records[1:] {
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad time %q: %w", rec[0], err)
		}
		row := make([]float64, 0, len(rec)-1)
		for _, cell := range rec[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: bad value %q: %w", cell, err)
			}
			row = append(row, v)
		}
		tb.Times = append(tb.Times, t)
		tb.Values = append(tb.Values, row)
	}
	return tb, nil
}

// RunDir returns the directory of a saved run.
func (s *Store) RunDir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}
