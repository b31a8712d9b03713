// Package sysinfo collects the flat device-info record shown to the operator
// and fed into the readiness checks.
package sysinfo

import (
	"context"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Unknown is the placeholder used for facts that could not be collected.
const Unknown = "Unknown"

// DeviceInfo is a flat snapshot of local device/OS facts. It is populated
// wholesale by Collect and replaced, never mutated, on refresh.
type DeviceInfo struct {
	ProductName string
	OSVersion   string
	Build       string
	InstallDate string
	Model       string
	Hostname    string
	Arch        string

	TotalRAMBytes uint64
	FreeDiskBytes uint64
	TotalRAMGB    int
	FreeDiskGB    int

	OnACPower bool

	CollectedAt time.Time
}

// Collect gathers device facts on a best-effort basis. It never fails hard:
// any fact that cannot be read keeps its placeholder value. Only the context
// bounds how long the underlying queries may take.
func Collect(ctx context.Context) DeviceInfo {
	info := DeviceInfo{
		ProductName: Unknown,
		OSVersion:   Unknown,
		Build:       Unknown,
		InstallDate: Unknown,
		Model:       Unknown,
		Hostname:    Unknown,
		Arch:        runtime.GOARCH,
		CollectedAt: time.Now(),
	}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		if hi.Platform != "" {
			info.ProductName = hi.Platform
		}
		if hi.PlatformVersion != "" {
			info.OSVersion = hi.PlatformVersion
		}
		if hi.KernelVersion != "" {
			info.Build = hi.KernelVersion
		}
		if hi.Hostname != "" {
			info.Hostname = hi.Hostname
		}
		if hi.KernelArch != "" {
			info.Arch = hi.KernelArch
		}
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.TotalRAMBytes = vm.Total
		info.TotalRAMGB = ToGB(vm.Total)
	}

	if du, err := disk.UsageWithContext(ctx, systemRoot()); err == nil {
		info.FreeDiskBytes = du.Free
		info.FreeDiskGB = ToGB(du.Free)
	}

	if model := deviceModel(); model != "" {
		info.Model = model
	}
	if d := installDate(); d != "" {
		info.InstallDate = d
	}
	info.OnACPower = onACPower()

	return info
}

// ToGB rounds a byte count to the nearest whole gigabyte (1024^3).
func ToGB(bytes uint64) int {
	return int(math.Round(float64(bytes) / float64(1<<30)))
}

// FormatBytes renders a byte count for display, e.g. "16 GiB".
func FormatBytes(bytes uint64) string {
	return humanize.IBytes(bytes)
}

// systemRoot returns the volume the operating system lives on, which is the
// volume the installer needs free space on.
func systemRoot() string {
	if runtime.GOOS == "windows" {
		if d := os.Getenv("SystemDrive"); d != "" {
			return d + `\`
		}
		return `C:\`
	}
	return "/"
}
