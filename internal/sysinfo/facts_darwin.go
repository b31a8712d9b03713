//go:build darwin

package sysinfo

import (
	"os"
	"os/exec"
	"strings"
)

// onACPower shells out to pmset; "AC Power" appears in the first line of
// `pmset -g ps` whenever the adapter is attached. Machines where pmset is
// unavailable report true.
func onACPower() bool {
	out, err := exec.Command("pmset", "-g", "ps").Output()
	if err != nil {
		return true
	}
	return strings.Contains(string(out), "AC Power")
}

// installDate approximates the OS install date from the setup marker macOS
// writes when the machine is first configured.
func installDate() string {
	fi, err := os.Stat("/var/db/.AppleSetupDone")
	if err != nil {
		return ""
	}
	return fi.ModTime().Format("2006-01-02")
}

func deviceModel() string {
	out, err := exec.Command("sysctl", "-n", "hw.model").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
