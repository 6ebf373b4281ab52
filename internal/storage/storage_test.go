package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecordAndListSearches(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "chessplay-telemetry-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbDir := filepath.Join(tmpDir, "telemetry")
	s, err := NewStorage(dbDir)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	defer s.Close()

	records := []SearchTelemetry{
		{StartFEN: "startpos", BestMove: "e2e4", Iterations: 100, TreeSize: 250, ElapsedMs: 50, Exploration: 0.6},
		{StartFEN: "startpos", BestMove: "d2d4", Iterations: 200, TreeSize: 400, ElapsedMs: 100, Exploration: 0.6},
	}

	for _, rec := range records {
		if err := s.RecordSearch(rec); err != nil {
			t.Fatalf("RecordSearch: %v", err)
		}
	}

	got, err := s.ListSearches()
	if err != nil {
		t.Fatalf("ListSearches: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i, rec := range records {
		if got[i] != rec {
			t.Errorf("record %d = %+v, want %+v", i, got[i], rec)
		}
	}
}

func TestGetDataDir(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
}

func TestGetTelemetryDir(t *testing.T) {
	dir, err := GetTelemetryDir()
	if err != nil {
		t.Fatalf("GetTelemetryDir failed: %v", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("telemetry directory was not created: %s", dir)
	}
}
