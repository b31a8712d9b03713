package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "upready",
	Short: "upready checks upgrade readiness and launches the installer",
	Long:  "upready collects local device facts, compares them against the installer's minimum requirements, and launches the upgrade installer with a chosen preset command line",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("upready: run 'upready --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
