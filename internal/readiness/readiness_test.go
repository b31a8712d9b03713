package readiness

import (
	"strings"
	"testing"

	"github.com/VoxDroid/upready/internal/sysinfo"
)

func info(ramGB, diskGB int, ac bool) sysinfo.DeviceInfo {
	return sysinfo.DeviceInfo{TotalRAMGB: ramGB, FreeDiskGB: diskGB, OnACPower: ac}
}

func TestEvaluateAtAboveBelow(t *testing.T) {
	req := Requirements{MinRAMGB: 4, MinFreeDiskGB: 64, RequireACPower: true}

	cases := []struct {
		name  string
		info  sysinfo.DeviceInfo
		ready bool
	}{
		{"all above", info(16, 200, true), true},
		{"exactly at minimums", info(4, 64, true), true},
		{"ram below", info(3, 200, true), false},
		{"disk below", info(16, 63, true), false},
		{"on battery", info(16, 200, false), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rep := Evaluate(c.info, req)
			if rep.Ready() != c.ready {
				t.Fatalf("Ready() = %v, want %v (%+v)", rep.Ready(), c.ready, rep.Checks)
			}
		})
	}
}

func TestEvaluateACNotRequired(t *testing.T) {
	req := Requirements{MinRAMGB: 4, MinFreeDiskGB: 64, RequireACPower: false}
	rep := Evaluate(info(8, 100, false), req)
	if !rep.Ready() {
		t.Fatalf("expected ready when AC is not required")
	}
	if len(rep.Checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(rep.Checks))
	}
}

func TestReportLines(t *testing.T) {
	rep := Evaluate(info(3, 64, true), Defaults())
	lines := rep.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "[FAIL] Memory") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[PASS] Free disk space") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
	if !strings.Contains(lines[3], "does not meet") {
		t.Fatalf("unexpected verdict line: %q", lines[3])
	}
}
