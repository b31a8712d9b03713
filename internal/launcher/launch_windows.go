//go:build windows

package launcher

import (
	"fmt"
	"os/exec"
	"strings"
)

// launchCommand builds the process invocation. Elevation goes through
// PowerShell's Start-Process -Verb RunAs, which raises the UAC prompt. The
// wrapped return marks the PowerShell wrapper, which must be waited on: a
// declined prompt surfaces on its stderr only after Start has succeeded.
func launchCommand(path string, args []string, elevate bool) (*exec.Cmd, bool, error) {
	if !elevate {
		return exec.Command(path, args...), false, nil
	}
	ps, err := exec.LookPath("powershell")
	if err != nil {
		if ps, err = exec.LookPath("pwsh"); err != nil {
			return nil, false, fmt.Errorf("elevation requires PowerShell: %w", err)
		}
	}
	script := fmt.Sprintf(`Start-Process -FilePath %s -Verb RunAs`, psQuote(path))
	if len(args) > 0 {
		quoted := make([]string, len(args))
		for i, a := range args {
			quoted[i] = psQuote(a)
		}
		script += " -ArgumentList " + strings.Join(quoted, ",")
	}
	return exec.Command(ps, "-NoProfile", "-Command", script), true, nil
}

// psQuote single-quotes a string for PowerShell, doubling embedded quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
