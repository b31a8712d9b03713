// Package mounter attaches installer disk images through the platform mount
// facility. It is a pass-through: no retries, failures surface to the caller.
package mounter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Mount attaches the disk image at imagePath and returns the combined output
// of the platform tool, which usually names the mount point.
func Mount(ctx context.Context, imagePath string) (string, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return "", fmt.Errorf("disk image: %w", err)
	}
	name, args := mountInvocation(imagePath)
	if _, err := exec.LookPath(name); err != nil {
		return "", fmt.Errorf("mount tool not found in PATH: %s", name)
	}
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		if text != "" {
			return "", fmt.Errorf("mount failed: %w (%s)", err, text)
		}
		return "", fmt.Errorf("mount failed: %w", err)
	}
	return text, nil
}
