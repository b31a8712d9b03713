package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VoxDroid/upready/internal/db"
	"github.com/VoxDroid/upready/internal/history"
	"github.com/VoxDroid/upready/internal/launcher"
)

func setupTempHome(t *testing.T) {
	t.Helper()
	t.Setenv("UPREADY_HOME", t.TempDir())
}

func writeInstaller(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), launcher.DefaultInstallerName)
	if err := os.WriteFile(p, []byte("stub"), 0o755); err != nil {
		t.Fatalf("write installer stub: %v", err)
	}
	return p
}

func captureOutput(f func()) string {
	oldOut := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	f()

	_ = w.Close()
	os.Stdout = oldOut
	return <-outC
}

func TestLaunchDryRunPrintsCommandLine(t *testing.T) {
	setupTempHome(t)
	p := writeInstaller(t)

	out := captureOutput(func() {
		rootCmd.SetArgs([]string{"launch", p, "--preset", "quiet", "--args", "/CopyLogs", "--dry-run"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("launch failed: %v", err)
		}
	})
	if !strings.Contains(out, "dry-run: "+p+" /QuietInstall /SkipEULA /CopyLogs") {
		t.Fatalf("unexpected dry-run output: %q", out)
	}

	// the dry run is journaled
	dbConn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = dbConn.Close() }()
	launches, err := history.NewRepository(dbConn).ListLaunches(5)
	if err != nil {
		t.Fatalf("ListLaunches: %v", err)
	}
	if len(launches) != 1 || launches[0].Outcome != "dry-run" {
		t.Fatalf("expected journaled dry-run, got %+v", launches)
	}
}

func TestLaunchRejectsWrongFilename(t *testing.T) {
	setupTempHome(t)
	p := filepath.Join(t.TempDir(), "setup.exe")
	if err := os.WriteFile(p, []byte("stub"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	rootCmd.SetArgs([]string{"launch", p, "--preset", "quiet", "--dry-run"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatalf("expected error for wrong filename")
	}
	if !strings.Contains(err.Error(), "unexpected file name") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLaunchRejectsUnknownPreset(t *testing.T) {
	setupTempHome(t)
	p := writeInstaller(t)

	rootCmd.SetArgs([]string{"launch", p, "--preset", "nope", "--dry-run"})
	if err := rootCmd.Execute(); err == nil || !strings.Contains(err.Error(), "preset not found") {
		t.Fatalf("expected preset-not-found error, got %v", err)
	}
	_ = launchCmd.Flags().Set("preset", "interactive")
}

func TestLaunchInvokesLauncher(t *testing.T) {
	setupTempHome(t)
	p := writeInstaller(t)

	orig := launchFunc
	defer func() { launchFunc = orig }()
	var gotPath string
	var gotArgs []string
	var gotElevate bool
	launchFunc = func(path string, args []string, elevate bool) error {
		gotPath = path
		gotArgs = args
		gotElevate = elevate
		return nil
	}

	_ = launchCmd.Flags().Set("dry-run", "false")
	_ = launchCmd.Flags().Set("args", "")
	out := captureOutput(func() {
		rootCmd.SetArgs([]string{"launch", p, "--preset", "quiet-no-restart", "--elevate"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("launch failed: %v", err)
		}
	})
	if gotPath != p || !gotElevate {
		t.Fatalf("unexpected launch call: path=%q elevate=%v", gotPath, gotElevate)
	}
	want := []string{"/QuietInstall", "/SkipEULA", "/NoRestartUI"}
	if len(gotArgs) != len(want) {
		t.Fatalf("unexpected args: %v", gotArgs)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Fatalf("arg[%d] = %q, want %q", i, gotArgs[i], want[i])
		}
	}
	if !strings.Contains(out, "installer started") {
		t.Fatalf("unexpected output: %q", out)
	}
	_ = launchCmd.Flags().Set("elevate", "false")
}

func TestLaunchConfirmDecline(t *testing.T) {
	setupTempHome(t)
	p := writeInstaller(t)

	orig := launchFunc
	defer func() { launchFunc = orig }()
	called := false
	launchFunc = func(string, []string, bool) error {
		called = true
		return nil
	}

	oldStdin := os.Stdin
	r, w, _ := os.Pipe()
	_, _ = w.Write([]byte("n\n"))
	_ = w.Close()
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	_ = launchCmd.Flags().Set("dry-run", "false")
	_ = launchCmd.Flags().Set("args", "")
	out := captureOutput(func() {
		rootCmd.SetArgs([]string{"launch", p, "--preset", "quiet", "--confirm"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("launch failed: %v", err)
		}
	})
	if called {
		t.Fatalf("launch must not run when the user declines")
	}
	if !strings.Contains(out, "aborted") {
		t.Fatalf("expected aborted message, got %q", out)
	}
	_ = launchCmd.Flags().Set("confirm", "false")
}
