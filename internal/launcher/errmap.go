package launcher

import "strings"

// friendlyRule maps a substring of an OS error message to a short
// operator-facing explanation.
type friendlyRule struct {
	contains string
	message  string
}

var friendlyRules = []friendlyRule{
	{"access is denied", "Access denied. Run the launch again with elevation (--elevate) or from an administrator session."},
	{"permission denied", "Permission denied. Run the launch again with elevation (--elevate)."},
	{"operation not permitted", "Permission denied. Run the launch again with elevation (--elevate)."},
	{"the operation was canceled by the user", "The elevation prompt was dismissed. Launch again and accept the prompt."},
	{"the system cannot find the file", "The installer executable could not be found. Select the installer file again."},
	{"no such file or directory", "The installer executable could not be found. Select the installer file again."},
	{"executable file not found", "The installer executable could not be found. Select the installer file again."},
	{"not a valid win32 application", "The selected file is not a runnable installer for this system."},
	{"exec format error", "The selected file is not a runnable installer for this system."},
}

// Friendly maps an OS-level launch failure to a short human-readable string
// by substring matching on the underlying error message. Unmatched errors
// are shown verbatim.
func Friendly(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())
	for _, r := range friendlyRules {
		if strings.Contains(msg, r.contains) {
			return r.message
		}
	}
	return err.Error()
}
