package cmd

import (
	"strings"
	"testing"

	"github.com/VoxDroid/upready/internal/db"
	"github.com/VoxDroid/upready/internal/history"
)

func TestCheckPrintsFactsAndJournals(t *testing.T) {
	setupTempHome(t)

	out := captureOutput(func() {
		rootCmd.SetArgs([]string{"check"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("check failed: %v", err)
		}
	})
	for _, want := range []string{"Product:", "Memory:", "Free disk:", "Power:", "minimum requirements"} {
		if !strings.Contains(out, want) {
			t.Fatalf("%q missing from check output:\n%s", want, out)
		}
	}

	dbConn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = dbConn.Close() }()
	checks, err := history.NewRepository(dbConn).ListChecks(5)
	if err != nil {
		t.Fatalf("ListChecks: %v", err)
	}
	if len(checks) != 1 {
		t.Fatalf("expected 1 journaled check, got %d", len(checks))
	}
}

func TestCheckNoJournal(t *testing.T) {
	setupTempHome(t)

	captureOutput(func() {
		rootCmd.SetArgs([]string{"check", "--no-journal"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("check failed: %v", err)
		}
	})

	dbConn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = dbConn.Close() }()
	checks, err := history.NewRepository(dbConn).ListChecks(5)
	if err != nil {
		t.Fatalf("ListChecks: %v", err)
	}
	if len(checks) != 0 {
		t.Fatalf("expected empty journal, got %d checks", len(checks))
	}
	_ = checkCmd.Flags().Set("no-journal", "false")
}

func TestCheckThresholdFlags(t *testing.T) {
	setupTempHome(t)

	// impossible thresholds force a FAIL verdict regardless of host
	out := captureOutput(func() {
		rootCmd.SetArgs([]string{"check", "--min-ram", "1000000", "--no-journal"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("check failed: %v", err)
		}
	})
	if !strings.Contains(out, "does not meet") {
		t.Fatalf("expected failing verdict:\n%s", out)
	}
	_ = checkCmd.Flags().Set("min-ram", "4")
	_ = checkCmd.Flags().Set("no-journal", "false")
}
