package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get KEY DEST",
	Short: "Download an object to a local path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		key, dest := args[0], args[1]

		svc, logg, err := setupService(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		ok, err := svc.Download(ctx, key, dest)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("object %s does not exist in bucket %s", key, svc.Bucket())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(getCmd)
}
