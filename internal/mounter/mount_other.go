//go:build !windows && !darwin

package mounter

func mountInvocation(imagePath string) (string, []string) {
	return "udisksctl", []string{"loop-setup", "-f", imagePath}
}
