package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// bucketsCmd represents the buckets command
var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List all buckets visible to the credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, logg, err := setupService(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		names, err := svc.Buckets(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bucketsCmd)
}
