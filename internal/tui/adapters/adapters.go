// Package adapters provides adapter interfaces and lightweight types used by
// the TUI to decouple it from the internal domain packages.
package adapters

import (
	"context"

	"github.com/VoxDroid/upready/internal/readiness"
	"github.com/VoxDroid/upready/internal/sysinfo"
)

// PresetSummary is the lightweight preset view the TUI renders.
type PresetSummary struct {
	Name        string
	Description string
	Args        string
}

// CollectorAdapter describes the device-fact collection used by the UI.
// Keep methods small and easy to mock for tests.
type CollectorAdapter interface {
	Collect(ctx context.Context) sysinfo.DeviceInfo
}

// LauncherAdapter describes path validation and installer launching.
type LauncherAdapter interface {
	ValidatePath(path string) error
	Launch(path string, args []string, elevate bool) error
}

// JournalAdapter records checks and launches. Writes are best-effort from
// the UI: a failed write never blocks a launch.
type JournalAdapter interface {
	RecordCheck(info sysinfo.DeviceInfo, rep readiness.Report) error
	RecordLaunch(path, preset, extraArgs string, elevated bool, outcome string) error
}
