// Package preset holds the built-in installer argument presets. The list is
// immutable configuration; nothing mutates it at runtime.
package preset

// Preset is a named installer command-line template.
type Preset struct {
	Name        string
	Description string
	Args        string
}

// builtin is ordered from least to most automated.
var builtin = []Preset{
	{
		Name:        "interactive",
		Description: "Run the installer with its own UI and prompts",
		Args:        "",
	},
	{
		Name:        "quiet",
		Description: "Suppress the installer UI and accept the license",
		Args:        "/QuietInstall /SkipEULA",
	},
	{
		Name:        "quiet-no-restart",
		Description: "Quiet install without the restart countdown UI",
		Args:        "/QuietInstall /SkipEULA /NoRestartUI",
	},
	{
		Name:        "unattended",
		Description: "Fully unattended upgrade, copy logs to the data directory",
		Args:        "/QuietInstall /SkipEULA /Auto Upgrade /NoRestartUI /CopyLogs",
	},
	{
		Name:        "uninstall",
		Description: "Roll back the previous upgrade",
		Args:        "/Uninstall /QuietInstall",
	},
}

// All returns a copy of the preset list so callers cannot mutate the builtin
// slice through the returned value.
func All() []Preset {
	out := make([]Preset, len(builtin))
	copy(out, builtin)
	return out
}

// Find returns the preset with the exact given name.
func Find(name string) (Preset, bool) {
	for _, p := range builtin {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Search returns the presets whose name, description, or argument string
// fuzzy-matches the query.
func Search(query string) []Preset {
	var out []Preset
	for _, p := range builtin {
		if FuzzyMatch(p.Name, query) || FuzzyMatch(p.Description, query) || FuzzyMatch(p.Args, query) {
			out = append(out, p)
		}
	}
	return out
}
