package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/upready/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the installer command-line presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		ps := preset.Search(filter)
		if len(ps) == 0 {
			fmt.Println("no presets match the filter")
			return nil
		}
		for _, p := range ps {
			args := p.Args
			if args == "" {
				args = "(no arguments)"
			}
			fmt.Printf("%-18s %s\n", p.Name, p.Description)
			fmt.Printf("%-18s %s\n", "", args)
		}
		return nil
	},
}

func init() {
	presetsCmd.Flags().String("filter", "", "Fuzzy filter on name, description, or arguments")
	rootCmd.AddCommand(presetsCmd)
}
