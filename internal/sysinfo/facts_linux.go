//go:build linux

package sysinfo

import (
	"os"
	"path/filepath"
	"strings"
)

// onACPower reports whether the machine is running on mains power. Hosts
// without any power-supply entries (desktops, VMs) report true so the AC
// check cannot spuriously block them.
func onACPower() bool {
	entries, err := os.ReadDir("/sys/class/power_supply")
	if err != nil || len(entries) == 0 {
		return true
	}
	sawSupply := false
	for _, e := range entries {
		typ, err := os.ReadFile(filepath.Join("/sys/class/power_supply", e.Name(), "type"))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(string(typ)) {
		case "Mains", "USB":
			sawSupply = true
			online, err := os.ReadFile(filepath.Join("/sys/class/power_supply", e.Name(), "online"))
			if err == nil && strings.TrimSpace(string(online)) == "1" {
				return true
			}
		}
	}
	return !sawSupply
}

// installDate approximates the OS install date from /etc/machine-id, which
// is written once during provisioning.
func installDate() string {
	fi, err := os.Stat("/etc/machine-id")
	if err != nil {
		return ""
	}
	return fi.ModTime().Format("2006-01-02")
}

func deviceModel() string {
	for _, p := range []string{
		"/sys/devices/virtual/dmi/id/product_name",
		"/sys/firmware/devicetree/base/model",
	} {
		if b, err := os.ReadFile(p); err == nil {
			if m := strings.TrimSpace(strings.TrimRight(string(b), "\x00")); m != "" {
				return m
			}
		}
	}
	return ""
}
