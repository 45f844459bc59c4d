package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"pebbledisk/internal/disk"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS embryos (
	frame	INTEGER,
	time	REAL,
	id	INTEGER,
	a	REAL,
	mass	REAL,
	ecc	REAL
);
CREATE INDEX IF NOT EXISTS idx_frame ON embryos (frame, id);
`

// SnapshotStore records the embryo population frame by frame in an
// sqlite database. SQLite allows a single writer, which matches the
// single-threaded stepping model.
type SnapshotStore struct {
	db *sql.DB
}

// OpenSnapshots opens (creating if needed) a snapshot database at path.
func OpenSnapshots(path string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(snapshotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: init snapshot schema: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// SaveFrame writes the embryo population at one step.
func (s *SnapshotStore) SaveFrame(frame int, time float64, embryos []*disk.Embryo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO embryos (frame, time, id, a, mass, ecc) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, e := range embryos {
		if _, err := stmt.Exec(frame, time, i, e.A, e.Mass, e.Ecc); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Frame reads back the embryo population of one frame, ordered by id.
func (s *SnapshotStore) Frame(frame int) ([]disk.Embryo, error) {
	rows, err := s.db.Query(`SELECT a, mass, ecc FROM embryos WHERE frame = ? ORDER BY id ASC`, frame)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var embryos []disk.Embryo
	for rows.Next() {
		var e disk.Embryo
		if err := rows.Scan(&e.A, &e.Mass, &e.Ecc); err != nil {
			return nil, err
		}
		embryos = append(embryos, e)
	}
	return embryos, rows.Err()
}

// Frames returns the number of distinct frames stored.
func (s *SnapshotStore) Frames() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(DISTINCT frame) FROM embryos`).Scan(&n)
	return n, err
}
