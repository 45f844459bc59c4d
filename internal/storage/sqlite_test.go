package storage

import (
	"path/filepath"
	"testing"

	"pebbledisk/internal/disk"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	s, err := OpenSnapshots(path)
	if err != nil {
		t.Fatalf("OpenSnapshots: %v", err)
	}
	defer s.Close()

	frames := [][]*disk.Embryo{
		{{A: 1, Mass: 1e-4}, {A: 5, Mass: 2e-4, Ecc: 0.01}},
		{{A: 1, Mass: 1.5e-4}, {A: 5, Mass: 2.5e-4, Ecc: 0.01}, {A: 2.5, Mass: 0.02}},
	}
	for i, embryos := range frames {
		if err := s.SaveFrame(i, 1e5+float64(i)*100, embryos); err != nil {
			t.Fatalf("SaveFrame %d: %v", i, err)
		}
	}

	n, err := s.Frames()
	if err != nil {
		t.Fatalf("Frames: %v", err)
	}
	if n != 2 {
		t.Errorf("Frames = %d, want 2", n)
	}

	for i, want := range frames {
		got, err := s.Frame(i)
		if err != nil {
			t.Fatalf("Frame %d: %v", i, err)
		}
		if len(got) != len(want) {
			t.Fatalf("frame %d has %d embryos, want %d", i, len(got), len(want))
		}
		for j := range want {
			if got[j].A != want[j].A || got[j].Mass != want[j].Mass || got[j].Ecc != want[j].Ecc {
				t.Errorf("frame %d embryo %d = %+v, want %+v", i, j, got[j], *want[j])
			}
		}
	}
}

func TestSnapshotEmptyFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	s, err := OpenSnapshots(path)
	if err != nil {
		t.Fatalf("OpenSnapshots: %v", err)
	}
	defer s.Close()

	if err := s.SaveFrame(0, 1e5, nil); err != nil {
		t.Fatalf("SaveFrame: %v", err)
	}
	got, err := s.Frame(0)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty frame returned %d embryos", len(got))
	}

	// Reopening sees the same database.
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	s, err = OpenSnapshots(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if _, err := s.Frame(0); err != nil {
		t.Errorf("Frame after reopen: %v", err)
	}
}
