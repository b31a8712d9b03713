package history

import (
	"database/sql"
	"fmt"

	"github.com/VoxDroid/upready/internal/readiness"
	"github.com/VoxDroid/upready/internal/sysinfo"
)

// Repository provides journal operations over the SQLite database.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// RecordCheck journals one collected snapshot together with its verdict and
// returns the new row ID.
func (r *Repository) RecordCheck(info sysinfo.DeviceInfo, rep readiness.Report) (int64, error) {
	res, err := r.db.Exec(`INSERT INTO checks
		(created_at, product_name, os_version, build, model, hostname, install_date, ram_gb, free_disk_gb, on_ac_power, ready)
		VALUES (datetime('now'), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ProductName, info.OSVersion, info.Build, info.Model, info.Hostname, info.InstallDate,
		info.TotalRAMGB, info.FreeDiskGB, boolInt(info.OnACPower), boolInt(rep.Ready()))
	if err != nil {
		return 0, fmt.Errorf("insert check: %w", err)
	}
	return res.LastInsertId()
}

// RecordLaunch journals one launch attempt. outcome is "ok", "dry-run", or
// the mapped failure text.
func (r *Repository) RecordLaunch(installerPath, presetName, extraArgs string, elevated bool, outcome string) (int64, error) {
	res, err := r.db.Exec(`INSERT INTO launches
		(created_at, installer_path, preset, extra_args, elevated, outcome)
		VALUES (datetime('now'), ?, ?, ?, ?, ?)`,
		installerPath, presetName, extraArgs, boolInt(elevated), outcome)
	if err != nil {
		return 0, fmt.Errorf("insert launch: %w", err)
	}
	return res.LastInsertId()
}

// ListChecks returns the most recent checks, newest first.
func (r *Repository) ListChecks(limit int) ([]CheckRecord, error) {
	rows, err := r.db.Query(`SELECT id, created_at, product_name, os_version, build, model,
		COALESCE(hostname, ''), COALESCE(install_date, ''), ram_gb, free_disk_gb, on_ac_power, ready
		FROM checks ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []CheckRecord
	for rows.Next() {
		var c CheckRecord
		var ac, ready int
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.ProductName, &c.OSVersion, &c.Build, &c.Model,
			&c.Hostname, &c.InstallDate, &c.RAMGB, &c.FreeDiskGB, &ac, &ready); err != nil {
			return nil, err
		}
		c.OnACPower = ac != 0
		c.Ready = ready != 0
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListLaunches returns the most recent launch attempts, newest first.
func (r *Repository) ListLaunches(limit int) ([]LaunchRecord, error) {
	rows, err := r.db.Query(`SELECT id, created_at, installer_path, COALESCE(preset, ''),
		COALESCE(extra_args, ''), elevated, outcome
		FROM launches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []LaunchRecord
	for rows.Next() {
		var l LaunchRecord
		var elevated int
		if err := rows.Scan(&l.ID, &l.CreatedAt, &l.InstallerPath, &l.Preset, &l.ExtraArgs, &elevated, &l.Outcome); err != nil {
			return nil, err
		}
		l.Elevated = elevated != 0
		out = append(out, l)
	}
	return out, rows.Err()
}

// Prune deletes journal rows beyond the newest keep entries per table.
func (r *Repository) Prune(keep int) error {
	for _, table := range []string{"checks", "launches"} {
		q := fmt.Sprintf("DELETE FROM %s WHERE id NOT IN (SELECT id FROM %s ORDER BY id DESC LIMIT ?)", table, table)
		if _, err := r.db.Exec(q, keep); err != nil {
			return fmt.Errorf("prune %s: %w", table, err)
		}
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
