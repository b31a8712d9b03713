package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/VoxDroid/upready/internal/readiness"
	"github.com/VoxDroid/upready/internal/sysinfo"
)

// detailState carries everything the right-hand pane needs to render.
type detailState struct {
	haveInfo   bool
	refreshing bool
	info       sysinfo.DeviceInfo
	report     readiness.Report
	line       string
	lineErr    error
	elevate    bool
	width      int
}

const labelW = 14

// renderLabeled renders "label  value" with the value column aligned.
func renderLabeled(label, value string) string {
	if utf8.RuneCountInString(label) < labelW {
		label = label + strings.Repeat(" ", labelW-utf8.RuneCountInString(label))
	}
	return label + " " + value
}

func renderDetail(st detailState) string {
	var b strings.Builder

	b.WriteString("Device\n\n")
	if !st.haveInfo {
		if st.refreshing {
			b.WriteString("  collecting...\n")
		} else {
			b.WriteString("  no snapshot yet (press r)\n")
		}
	} else {
		info := st.info
		power := "on battery"
		if info.OnACPower {
			power = "AC connected"
		}
		for _, ln := range []string{
			renderLabeled("Product", info.ProductName),
			renderLabeled("Version", info.OSVersion),
			renderLabeled("Build", info.Build),
			renderLabeled("Installed", info.InstallDate),
			renderLabeled("Model", info.Model),
			renderLabeled("Hostname", info.Hostname),
			renderLabeled("Architecture", info.Arch),
			renderLabeled("Memory", sysinfo.FormatBytes(info.TotalRAMBytes)),
			renderLabeled("Free disk", sysinfo.FormatBytes(info.FreeDiskBytes)),
			renderLabeled("Power", power),
		} {
			b.WriteString("  " + ln + "\n")
		}

		b.WriteString("\nReadiness\n\n")
		for _, ln := range st.report.Lines() {
			b.WriteString("  " + ln + "\n")
		}
	}

	b.WriteString("\nLaunch\n\n")
	if st.lineErr != nil {
		b.WriteString("  " + st.lineErr.Error() + "\n")
	} else if st.line == "" {
		b.WriteString("  (no arguments — installer runs interactively)\n")
	} else {
		b.WriteString("  " + st.line + "\n")
	}
	if st.elevate {
		b.WriteString("  elevation: requested\n")
	} else {
		b.WriteString("  elevation: off\n")
	}
	return b.String()
}

func renderConfirm(path, line string, elevate bool) string {
	var b strings.Builder
	b.WriteString("Launch installer?\n\n")
	b.WriteString(renderLabeled("Executable", path) + "\n")
	if line == "" {
		b.WriteString(renderLabeled("Arguments", "(none)") + "\n")
	} else {
		b.WriteString(renderLabeled("Arguments", line) + "\n")
	}
	if elevate {
		b.WriteString(renderLabeled("Elevation", "yes") + "\n")
	} else {
		b.WriteString(renderLabeled("Elevation", "no") + "\n")
	}
	b.WriteString("\n[y] launch   [n] cancel")
	return b.String()
}
