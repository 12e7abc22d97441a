package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// metaCmd represents the meta command
var metaCmd = &cobra.Command{
	Use:   "meta KEY k=v [k=v ...]",
	Short: "Replace an object's user metadata",
	Long: `Replaces the object's user metadata with exactly the given pairs via
a server-side self-copy. This is a full replace, not a merge: pairs not listed
are dropped from the object.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		key := args[0]

		metadata, err := parseMetadata(args[1:])
		if err != nil {
			return err
		}

		svc, logg, err := setupService(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		ok, err := svc.UpdateMetadata(ctx, key, metadata)
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
	RootCmd.AddCommand(metaCmd)
}
