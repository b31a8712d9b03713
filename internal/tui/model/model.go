// Package model provides a framework-agnostic UI model built on top of
// adapter interfaces so the TUI code can remain presentation-focused.
package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/VoxDroid/upready/internal/cmdline"
	"github.com/VoxDroid/upready/internal/preset"
	"github.com/VoxDroid/upready/internal/readiness"
	"github.com/VoxDroid/upready/internal/sysinfo"
	"github.com/VoxDroid/upready/internal/tui/adapters"
)

// UIModel holds the state behind the interactive screens: the latest device
// snapshot, its readiness report, and the preset list. Collection runs in a
// single background task; the UI polls for completion.
type UIModel struct {
	collector adapters.CollectorAdapter
	launcher  adapters.LauncherAdapter
	journal   adapters.JournalAdapter
	req       readiness.Requirements
	presets   []adapters.PresetSummary

	// guards the snapshot and the in-flight flag; the UI loop and the
	// background collection touch both
	mu       sync.Mutex
	info     sysinfo.DeviceInfo
	report   readiness.Report
	haveInfo bool
	inFlight bool
	resultCh chan sysinfo.DeviceInfo

	ctx    context.Context
	cancel context.CancelFunc
}

// New constructs a UIModel backed by the provided adapters.
func New(collector adapters.CollectorAdapter, launcher adapters.LauncherAdapter, journal adapters.JournalAdapter, req readiness.Requirements) *UIModel {
	ctx, cancel := context.WithCancel(context.Background())
	ps := make([]adapters.PresetSummary, 0)
	for _, p := range preset.All() {
		ps = append(ps, adapters.PresetSummary{Name: p.Name, Description: p.Description, Args: p.Args})
	}
	return &UIModel{
		collector: collector,
		launcher:  launcher,
		journal:   journal,
		req:       req,
		presets:   ps,
		resultCh:  make(chan sysinfo.DeviceInfo, 1),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Presets returns the immutable preset summaries.
func (m *UIModel) Presets() []adapters.PresetSummary { return m.presets }

// Requirements returns the thresholds in effect.
func (m *UIModel) Requirements() readiness.Requirements { return m.req }

// StartRefresh kicks off a background collection. It returns false without
// starting anything when a collection is already outstanding.
func (m *UIModel) StartRefresh() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight {
		return false
	}
	m.inFlight = true
	go func() {
		info := m.collector.Collect(m.ctx)
		select {
		case m.resultCh <- info:
		case <-m.ctx.Done():
		}
	}()
	return true
}

// Poll observes background-collection completion without blocking. It
// returns true when a fresh snapshot was picked up since the last call.
func (m *UIModel) Poll() bool {
	select {
	case info := <-m.resultCh:
		rep := readiness.Evaluate(info, m.req)
		m.mu.Lock()
		m.info = info
		m.report = rep
		m.haveInfo = true
		m.inFlight = false
		m.mu.Unlock()
		if m.journal != nil {
			// best-effort; a journal failure never blocks the UI
			_ = m.journal.RecordCheck(info, rep)
		}
		return true
	default:
		return false
	}
}

// Refreshing reports whether a background collection is outstanding.
func (m *UIModel) Refreshing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight
}

// Snapshot returns the latest device snapshot and report. ok is false until
// the first collection completes.
func (m *UIModel) Snapshot() (sysinfo.DeviceInfo, readiness.Report, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info, m.report, m.haveInfo
}

// Close stops the background task when the window closes.
func (m *UIModel) Close() { m.cancel() }

// BuildCommand assembles the full argument string for the named preset plus
// optional free-text extra arguments.
func (m *UIModel) BuildCommand(presetName, extra string) (string, error) {
	p, ok := preset.Find(presetName)
	if !ok {
		return "", fmt.Errorf("preset not found: %s", presetName)
	}
	line := cmdline.Build(p.Args, cmdline.Sanitize(extra))
	if err := cmdline.Validate(line); err != nil {
		return "", err
	}
	return line, nil
}

// ValidatePath checks the selected installer path.
func (m *UIModel) ValidatePath(path string) error {
	return m.launcher.ValidatePath(path)
}

// Launch validates the path, assembles the command line, and starts the
// installer. The outcome (journaled best-effort) is "ok" on success and the
// error text otherwise.
func (m *UIModel) Launch(path, presetName, extra string, elevate bool) error {
	if err := m.launcher.ValidatePath(path); err != nil {
		return err
	}
	line, err := m.BuildCommand(presetName, extra)
	if err != nil {
		return err
	}
	launchErr := m.launcher.Launch(path, cmdline.Split(line), elevate)
	if m.journal != nil {
		outcome := "ok"
		if launchErr != nil {
			outcome = launchErr.Error()
		}
		_ = m.journal.RecordLaunch(path, presetName, extra, elevate, outcome)
	}
	return launchErr
}
