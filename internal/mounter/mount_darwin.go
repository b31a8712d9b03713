//go:build darwin

package mounter

func mountInvocation(imagePath string) (string, []string) {
	return "hdiutil", []string{"attach", imagePath}
}
