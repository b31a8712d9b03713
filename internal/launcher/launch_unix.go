//go:build !windows

package launcher

import "os/exec"

// launchCommand builds the process invocation. Elevation prepends sudo; the
// sudo prompt appears on the controlling terminal. Nothing here is a
// short-lived wrapper, so launches always detach.
func launchCommand(path string, args []string, elevate bool) (*exec.Cmd, bool, error) {
	if elevate {
		return exec.Command("sudo", append([]string{path}, args...)...), false, nil
	}
	return exec.Command(path, args...), false, nil
}
