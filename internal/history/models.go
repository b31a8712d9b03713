// Package history journals readiness checks and installer launches.
package history

// CheckRecord is one journaled readiness check.
type CheckRecord struct {
	ID          int64
	CreatedAt   string
	ProductName string
	OSVersion   string
	Build       string
	Model       string
	Hostname    string
	InstallDate string
	RAMGB       int
	FreeDiskGB  int
	OnACPower   bool
	Ready       bool
}

// LaunchRecord is one journaled installer launch attempt.
type LaunchRecord struct {
	ID            int64
	CreatedAt     string
	InstallerPath string
	Preset        string
	ExtraArgs     string
	Elevated      bool
	Outcome       string
}
