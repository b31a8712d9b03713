package adapters

import (
	"github.com/VoxDroid/upready/internal/history"
	"github.com/VoxDroid/upready/internal/readiness"
	"github.com/VoxDroid/upready/internal/sysinfo"
)

type journalAdapter struct {
	repo *history.Repository
}

// NewJournalAdapter returns a JournalAdapter over the history repository.
func NewJournalAdapter(repo *history.Repository) JournalAdapter {
	return journalAdapter{repo: repo}
}

func (a journalAdapter) RecordCheck(info sysinfo.DeviceInfo, rep readiness.Report) error {
	_, err := a.repo.RecordCheck(info, rep)
	return err
}

func (a journalAdapter) RecordLaunch(path, preset, extraArgs string, elevated bool, outcome string) error {
	_, err := a.repo.RecordLaunch(path, preset, extraArgs, elevated, outcome)
	return err
}
