package cmd

import (
	"strings"
	"testing"

	"github.com/VoxDroid/upready/internal/db"
	"github.com/VoxDroid/upready/internal/history"
)

func TestHistoryEmpty(t *testing.T) {
	setupTempHome(t)

	out := captureOutput(func() {
		rootCmd.SetArgs([]string{"history"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("history failed: %v", err)
		}
	})
	if !strings.Contains(out, "Checks:") || !strings.Contains(out, "Launches:") {
		t.Fatalf("expected both sections:\n%s", out)
	}
	if strings.Count(out, "(none)") != 2 {
		t.Fatalf("expected two empty sections:\n%s", out)
	}
}

func TestHistoryShowsLaunches(t *testing.T) {
	setupTempHome(t)

	dbConn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	repo := history.NewRepository(dbConn)
	if _, err := repo.RecordLaunch("/tmp/x.exe", "quiet", "", true, "ok"); err != nil {
		t.Fatalf("RecordLaunch: %v", err)
	}
	_ = dbConn.Close()

	out := captureOutput(func() {
		rootCmd.SetArgs([]string{"history", "launches"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("history failed: %v", err)
		}
	})
	if !strings.Contains(out, "preset=quiet (elevated): ok") {
		t.Fatalf("launch entry missing:\n%s", out)
	}
	if strings.Contains(out, "Checks:") {
		t.Fatalf("checks section should be hidden for 'history launches':\n%s", out)
	}
}

func TestHistoryPrune(t *testing.T) {
	setupTempHome(t)

	dbConn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	repo := history.NewRepository(dbConn)
	for i := 0; i < 4; i++ {
		if _, err := repo.RecordLaunch("/tmp/x.exe", "quiet", "", false, "ok"); err != nil {
			t.Fatalf("RecordLaunch: %v", err)
		}
	}
	_ = dbConn.Close()

	captureOutput(func() {
		rootCmd.SetArgs([]string{"history", "--prune", "1"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("history --prune failed: %v", err)
		}
	})
	_ = historyCmd.Flags().Set("prune", "0")

	dbConn, err = db.InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = dbConn.Close() }()
	launches, err := history.NewRepository(dbConn).ListLaunches(10)
	if err != nil {
		t.Fatalf("ListLaunches: %v", err)
	}
	if len(launches) != 1 {
		t.Fatalf("expected 1 launch after prune, got %d", len(launches))
	}
}
