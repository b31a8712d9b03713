package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/upready/internal/db"
	"github.com/VoxDroid/upready/internal/history"
)

var historyCmd = &cobra.Command{
	Use:       "history [checks|launches]",
	Short:     "Show journaled readiness checks and installer launches",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"checks", "launches"},
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		prune, _ := cmd.Flags().GetInt("prune")

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()
		repo := history.NewRepository(dbConn)

		if prune > 0 {
			if err := repo.Prune(prune); err != nil {
				return err
			}
			fmt.Printf("journal pruned to %d entries per table\n", prune)
			return nil
		}

		which := ""
		if len(args) == 1 {
			which = args[0]
		}

		if which == "" || which == "checks" {
			checks, err := repo.ListChecks(limit)
			if err != nil {
				return err
			}
			fmt.Println("Checks:")
			if len(checks) == 0 {
				fmt.Println("  (none)")
			}
			for _, c := range checks {
				verdict := "not ready"
				if c.Ready {
					verdict = "ready"
				}
				fmt.Printf("  %s  %s %s  ram=%dGB disk=%dGB  %s\n",
					c.CreatedAt, c.ProductName, c.OSVersion, c.RAMGB, c.FreeDiskGB, verdict)
			}
		}
		if which == "" || which == "launches" {
			launches, err := repo.ListLaunches(limit)
			if err != nil {
				return err
			}
			fmt.Println("Launches:")
			if len(launches) == 0 {
				fmt.Println("  (none)")
			}
			for _, l := range launches {
				elev := ""
				if l.Elevated {
					elev = " (elevated)"
				}
				fmt.Printf("  %s  %s preset=%s%s: %s\n", l.CreatedAt, l.InstallerPath, l.Preset, elev, l.Outcome)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum entries to show per table")
	historyCmd.Flags().Int("prune", 0, "Prune the journal to the newest N entries per table")
	rootCmd.AddCommand(historyCmd)
}
