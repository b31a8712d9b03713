// Package launcher validates the installer path and starts the installer
// process, optionally under OS elevation.
package launcher

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultInstallerName is the executable name the upgrade assistant ships
// under. Path validation accepts only files with this exact base name.
const DefaultInstallerName = "Windows11InstallationAssistant.exe"

// ValidatePath accepts only an existing regular file whose base name equals
// wantName. The comparison is case-insensitive because the installer ships
// on case-insensitive filesystems.
func ValidatePath(path, wantName string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("no installer selected")
	}
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("installer not found: %s", path)
		}
		return fmt.Errorf("installer not accessible: %w", err)
	}
	if fi.IsDir() {
		return fmt.Errorf("installer path is a directory: %s", path)
	}
	if !strings.EqualFold(filepath.Base(path), wantName) {
		return fmt.Errorf("unexpected file name %q: expected %s", filepath.Base(path), wantName)
	}
	return nil
}

// Launch starts the installer with the given argument tokens. The installer
// owns its own UI from this point; upready never reads its output. Direct
// launches detach immediately. Elevated launches on Windows go through a
// short-lived PowerShell wrapper that exits once the installer is started,
// or nonzero when the elevation prompt is declined; that wrapper is waited
// on so the decline reaches the caller. Failures come back mapped through
// Friendly by callers that show them to the operator.
func Launch(path string, args []string, elevate bool) error {
	cmd, wrapped, err := launchCommand(path, args, elevate)
	if err != nil {
		return err
	}
	if wrapped {
		return runWrapper(cmd)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start installer: %w", err)
	}
	// Detach; the installer outlives this process.
	return cmd.Process.Release()
}

// runWrapper runs a short-lived launch wrapper to completion and folds its
// stderr into the returned error.
func runWrapper(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("start installer: %s", msg)
		}
		return fmt.Errorf("start installer: %w", err)
	}
	return nil
}
