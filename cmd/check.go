package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/upready/internal/db"
	"github.com/VoxDroid/upready/internal/history"
	"github.com/VoxDroid/upready/internal/readiness"
	"github.com/VoxDroid/upready/internal/sysinfo"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Collect device facts and evaluate upgrade readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		minRAM, _ := cmd.Flags().GetInt("min-ram")
		minDisk, _ := cmd.Flags().GetInt("min-disk")
		requireAC, _ := cmd.Flags().GetBool("require-ac")
		noJournal, _ := cmd.Flags().GetBool("no-journal")

		req := readiness.Requirements{MinRAMGB: minRAM, MinFreeDiskGB: minDisk, RequireACPower: requireAC}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		info := sysinfo.Collect(ctx)
		rep := readiness.Evaluate(info, req)

		power := "on battery"
		if info.OnACPower {
			power = "AC connected"
		}
		fmt.Printf("Product:       %s\n", info.ProductName)
		fmt.Printf("Version:       %s (build %s)\n", info.OSVersion, info.Build)
		fmt.Printf("Installed:     %s\n", info.InstallDate)
		fmt.Printf("Model:         %s\n", info.Model)
		fmt.Printf("Hostname:      %s\n", info.Hostname)
		fmt.Printf("Architecture:  %s\n", info.Arch)
		fmt.Printf("Memory:        %s\n", sysinfo.FormatBytes(info.TotalRAMBytes))
		fmt.Printf("Free disk:     %s\n", sysinfo.FormatBytes(info.FreeDiskBytes))
		fmt.Printf("Power:         %s\n", power)
		fmt.Println()
		for _, line := range rep.Lines() {
			fmt.Println(line)
		}

		if !noJournal {
			dbConn, err := db.InitDB()
			if err != nil {
				return err
			}
			defer func() { _ = dbConn.Close() }()
			if _, err := history.NewRepository(dbConn).RecordCheck(info, rep); err != nil {
				return fmt.Errorf("journal check: %w", err)
			}
		}
		return nil
	},
}

func init() {
	defaults := readiness.Defaults()
	checkCmd.Flags().Int("min-ram", defaults.MinRAMGB, "Minimum RAM in GB")
	checkCmd.Flags().Int("min-disk", defaults.MinFreeDiskGB, "Minimum free disk space in GB")
	checkCmd.Flags().Bool("require-ac", defaults.RequireACPower, "Require AC power to pass")
	checkCmd.Flags().Bool("no-journal", false, "Do not record this check in the journal")
	rootCmd.AddCommand(checkCmd)
}
