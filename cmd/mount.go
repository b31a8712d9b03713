package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/upready/internal/mounter"
)

var mountCmd = &cobra.Command{
	Use:   "mount <image-path>",
	Short: "Mount an installer disk image via the platform mount facility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		out, err := mounter.Mount(ctx, args[0])
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Println(out)
		}
		fmt.Println("image mounted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mountCmd)
}
