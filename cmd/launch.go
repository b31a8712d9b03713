package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/upready/internal/cmdline"
	"github.com/VoxDroid/upready/internal/db"
	"github.com/VoxDroid/upready/internal/history"
	"github.com/VoxDroid/upready/internal/launcher"
	"github.com/VoxDroid/upready/internal/preset"
	"github.com/VoxDroid/upready/internal/utils"
)

// launchFunc is a seam so tests can stub the actual process start.
var launchFunc = launcher.Launch

var launchCmd = &cobra.Command{
	Use:   "launch <installer-path>",
	Short: "Launch the installer with a preset command line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		presetName, _ := cmd.Flags().GetString("preset")
		extra, _ := cmd.Flags().GetString("args")
		elevate, _ := cmd.Flags().GetBool("elevate")
		dry, _ := cmd.Flags().GetBool("dry-run")
		confirmFlag, _ := cmd.Flags().GetBool("confirm")
		expectName, _ := cmd.Flags().GetString("installer-name")

		if err := launcher.ValidatePath(path, expectName); err != nil {
			return fmt.Errorf("%s", launcher.Friendly(err))
		}

		p, ok := preset.Find(presetName)
		if !ok {
			return fmt.Errorf("preset not found: %s (see 'upready presets')", presetName)
		}
		line := cmdline.Build(p.Args, cmdline.Sanitize(extra))
		if err := cmdline.Validate(line); err != nil {
			return err
		}

		if dry {
			fmt.Printf("dry-run: %s %s\n", path, line)
			recordLaunch(path, presetName, extra, elevate, "dry-run")
			return nil
		}

		if confirmFlag {
			if !utils.Confirm(fmt.Sprintf("Launch '%s' with preset '%s' now?", path, presetName)) {
				fmt.Println("aborted")
				return nil
			}
		}

		if err := launchFunc(path, cmdline.Split(line), elevate); err != nil {
			recordLaunch(path, presetName, extra, elevate, err.Error())
			return fmt.Errorf("%s", launcher.Friendly(err))
		}
		recordLaunch(path, presetName, extra, elevate, "ok")
		fmt.Println("installer started")
		return nil
	},
}

// recordLaunch journals the attempt best-effort; a journal failure never
// masks the launch result.
func recordLaunch(path, presetName, extra string, elevated bool, outcome string) {
	dbConn, err := db.InitDB()
	if err != nil {
		return
	}
	defer func() { _ = dbConn.Close() }()
	_, _ = history.NewRepository(dbConn).RecordLaunch(path, presetName, extra, elevated, outcome)
}

func init() {
	launchCmd.Flags().String("preset", "interactive", "Preset name to use")
	launchCmd.Flags().String("args", "", "Extra arguments appended to the preset")
	launchCmd.Flags().Bool("elevate", false, "Request OS elevation for the installer")
	launchCmd.Flags().Bool("dry-run", false, "Print the command line without launching")
	launchCmd.Flags().Bool("confirm", false, "Ask for confirmation before launching")
	launchCmd.Flags().String("installer-name", launcher.DefaultInstallerName, "Expected installer executable name")
	rootCmd.AddCommand(launchCmd)
}
