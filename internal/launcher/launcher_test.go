package launcher

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("stub"), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestValidatePathAcceptsExactName(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, DefaultInstallerName)
	if err := ValidatePath(p, DefaultInstallerName); err != nil {
		t.Fatalf("ValidatePath: %v", err)
	}
}

func TestValidatePathCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "windows11installationassistant.EXE")
	if err := ValidatePath(p, DefaultInstallerName); err != nil {
		t.Fatalf("ValidatePath should ignore case: %v", err)
	}
}

func TestValidatePathRejections(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"missing", filepath.Join(dir, DefaultInstallerName)},
		{"directory", dir},
		{"wrong name", writeFile(t, dir, "setup.exe")},
		{"prefix match", writeFile(t, dir, "Windows11InstallationAssistant.exe.bak")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := ValidatePath(c.path, DefaultInstallerName); err == nil {
				t.Fatalf("expected rejection for %q", c.path)
			}
		})
	}
}

func TestFriendly(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{errors.New("CreateProcess: Access is denied."), "Access denied"},
		{errors.New("fork/exec ./x: permission denied"), "Permission denied"},
		{errors.New("The system cannot find the file specified."), "could not be found"},
		{errors.New("exec format error"), "not a runnable installer"},
	}
	for _, c := range cases {
		if got := Friendly(c.err); !strings.Contains(got, c.want) {
			t.Fatalf("Friendly(%v) = %q, want substring %q", c.err, got, c.want)
		}
	}
}

func TestRunWrapperReportsDeclinedElevation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}
	// the elevation wrapper exits nonzero with the decline on stderr
	cmd := exec.Command("sh", "-c", `echo "Start-Process : This command cannot be run due to the error: The operation was canceled by the user." 1>&2; exit 1`)
	err := runWrapper(cmd)
	if err == nil {
		t.Fatalf("expected wrapper failure")
	}
	if !strings.Contains(err.Error(), "canceled by the user") {
		t.Fatalf("wrapper stderr missing from error: %v", err)
	}
	if got := Friendly(err); !strings.Contains(got, "elevation prompt was dismissed") {
		t.Fatalf("Friendly(%v) = %q", err, got)
	}
}

func TestRunWrapperSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}
	if err := runWrapper(exec.Command("sh", "-c", "exit 0")); err != nil {
		t.Fatalf("runWrapper: %v", err)
	}
}

func TestFriendlyUnmatchedVerbatim(t *testing.T) {
	err := errors.New("something unusual happened")
	if got := Friendly(err); got != err.Error() {
		t.Fatalf("unmatched error should pass through verbatim, got %q", got)
	}
	if got := Friendly(nil); got != "" {
		t.Fatalf("Friendly(nil) = %q, want empty", got)
	}
}
