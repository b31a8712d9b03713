package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/upready/internal/browser"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Open the installer download page in the default browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		if err := browser.Open(url); err != nil {
			return err
		}
		fmt.Printf("opened %s\n", url)
		return nil
	},
}

func init() {
	docsCmd.Flags().String("url", browser.DownloadURL, "Page to open")
	rootCmd.AddCommand(docsCmd)
}
