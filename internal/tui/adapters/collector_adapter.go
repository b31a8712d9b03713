package adapters

import (
	"context"

	"github.com/VoxDroid/upready/internal/sysinfo"
)

type collectorAdapter struct{}

// NewCollectorAdapter returns a CollectorAdapter backed by the real sysinfo
// collection.
func NewCollectorAdapter() CollectorAdapter {
	return collectorAdapter{}
}

func (collectorAdapter) Collect(ctx context.Context) sysinfo.DeviceInfo {
	return sysinfo.Collect(ctx)
}
