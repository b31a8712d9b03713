package adapters

import "github.com/VoxDroid/upready/internal/launcher"

type launcherAdapter struct {
	installerName string
}

// NewLauncherAdapter returns a LauncherAdapter for the given expected
// installer executable name.
func NewLauncherAdapter(installerName string) LauncherAdapter {
	return launcherAdapter{installerName: installerName}
}

func (a launcherAdapter) ValidatePath(path string) error {
	return launcher.ValidatePath(path, a.installerName)
}

func (a launcherAdapter) Launch(path string, args []string, elevate bool) error {
	return launcher.Launch(path, args, elevate)
}
