// Package browser opens URLs in the operator's default web browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// DownloadURL is the vendor page hosting the upgrade assistant download.
const DownloadURL = "https://www.microsoft.com/software-download/windows11"

// Open launches the default browser on the given URL. Only http(s) URLs are
// accepted so this can never be used to start an arbitrary program.
func Open(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-http URL: %s", url)
	}
	name, args := openInvocation(url)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("browser opener not found in PATH: %s", name)
	}
	return exec.Command(name, args...).Start()
}

func openInvocation(url string) (string, []string) {
	switch runtime.GOOS {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}
