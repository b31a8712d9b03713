package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/upready/cmd/tui/ui"
	"github.com/VoxDroid/upready/internal/db"
	"github.com/VoxDroid/upready/internal/history"
	"github.com/VoxDroid/upready/internal/launcher"
	"github.com/VoxDroid/upready/internal/readiness"
	"github.com/VoxDroid/upready/internal/tui/adapters"
	modelpkg "github.com/VoxDroid/upready/internal/tui/model"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI",
	RunE: func(cmd *cobra.Command, _ []string) error {
		expectName, _ := cmd.Flags().GetString("installer-name")

		// Init DB for the journal; the UI still works if it fails
		var journal adapters.JournalAdapter
		if dbConn, err := db.InitDB(); err == nil {
			defer func() { _ = dbConn.Close() }()
			journal = adapters.NewJournalAdapter(history.NewRepository(dbConn))
		}

		collector := adapters.NewCollectorAdapter()
		launch := adapters.NewLauncherAdapter(expectName)

		uiModel := modelpkg.New(collector, launch, journal, readiness.Defaults())
		defer uiModel.Close()

		p := ui.NewProgram(uiModel)
		_, err := p.Run()
		return err
	},
}

func init() {
	tuiCmd.Flags().String("installer-name", launcher.DefaultInstallerName, "Expected installer executable name")
	rootCmd.AddCommand(tuiCmd)
}

// The Bubble Tea UI lives in `cmd/tui/ui` to keep UI implementation and
// tests centralized. See that package for the list, detail, and launch
// modal implementation.
