// Package readiness evaluates collected device facts against the minimum
// requirements the installer enforces.
package readiness

import (
	"fmt"

	"github.com/VoxDroid/upready/internal/sysinfo"
)

// Requirements holds the thresholds a device must meet. A measured value
// exactly at a minimum passes.
type Requirements struct {
	MinRAMGB       int
	MinFreeDiskGB  int
	RequireACPower bool
}

// Defaults returns the vendor minimums the installer checks for itself.
func Defaults() Requirements {
	return Requirements{MinRAMGB: 4, MinFreeDiskGB: 64, RequireACPower: true}
}

// Check is the outcome of a single threshold comparison.
type Check struct {
	Name     string
	Passed   bool
	Measured string
	Required string
}

// Report is the outcome of evaluating all checks for one device snapshot.
type Report struct {
	Checks []Check
}

// Ready reports whether every check passed.
func (r Report) Ready() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Evaluate runs the threshold comparisons against a device snapshot. It is
// pure: the same snapshot and requirements always produce the same report.
func Evaluate(info sysinfo.DeviceInfo, req Requirements) Report {
	var rep Report
	rep.Checks = append(rep.Checks, Check{
		Name:     "Memory",
		Passed:   info.TotalRAMGB >= req.MinRAMGB,
		Measured: fmt.Sprintf("%d GB", info.TotalRAMGB),
		Required: fmt.Sprintf("%d GB minimum", req.MinRAMGB),
	})
	rep.Checks = append(rep.Checks, Check{
		Name:     "Free disk space",
		Passed:   info.FreeDiskGB >= req.MinFreeDiskGB,
		Measured: fmt.Sprintf("%d GB", info.FreeDiskGB),
		Required: fmt.Sprintf("%d GB minimum", req.MinFreeDiskGB),
	})
	if req.RequireACPower {
		measured := "on battery"
		if info.OnACPower {
			measured = "connected"
		}
		rep.Checks = append(rep.Checks, Check{
			Name:     "AC power",
			Passed:   info.OnACPower,
			Measured: measured,
			Required: "connected",
		})
	}
	return rep
}

// Lines renders the report as short operator-facing lines.
func (r Report) Lines() []string {
	out := make([]string, 0, len(r.Checks)+1)
	for _, c := range r.Checks {
		mark := "PASS"
		if !c.Passed {
			mark = "FAIL"
		}
		out = append(out, fmt.Sprintf("[%s] %s: %s (%s)", mark, c.Name, c.Measured, c.Required))
	}
	if r.Ready() {
		out = append(out, "Device meets the minimum requirements.")
	} else {
		out = append(out, "Device does not meet the minimum requirements.")
	}
	return out
}
