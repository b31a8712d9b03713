package config

import (
	"os"
	"path/filepath"
)

// DataDir returns the directory used to store upready data. The UPREADY_HOME
// environment variable overrides the default so tests and portable installs
// can redirect it.
func DataDir() (string, error) {
	if dir := os.Getenv("UPREADY_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Use a dot-directory in the user's home on all platforms
	return filepath.Join(home, ".upready"), nil
}

// DBPath returns the full path to the SQLite journal database file.
func DBPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "upready.db"), nil
}
