//go:build windows

package mounter

import "strings"

func mountInvocation(imagePath string) (string, []string) {
	script := "Mount-DiskImage -ImagePath '" + strings.ReplaceAll(imagePath, "'", "''") + "' -PassThru | Get-Volume | Select-Object -ExpandProperty DriveLetter"
	return "powershell", []string{"-NoProfile", "-Command", script}
}
