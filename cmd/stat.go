package cmd

import (
	"errors"
	"fmt"

	"bucket-manager/core/utils"
	"bucket-manager/feature/objects"

	"github.com/spf13/cobra"
)

var statSha256 bool

// statCmd represents the stat command
var statCmd = &cobra.Command{
	Use:   "stat KEY",
	Short: "Show an object's size, timestamps and metadata",
	Long: `Performs a head query against the object and prints its attributes.
With --sha256 the whole body is additionally downloaded and hashed; use this
for small objects only.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		key := args[0]

		svc, logg, err := setupService(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		headers, err := svc.Stat(ctx, key)
		if err != nil {
			if errors.Is(err, objects.ErrObjectNotFound) {
				return fmt.Errorf("object %s does not exist in bucket %s", key, svc.Bucket())
			}
			return err
		}

		fmt.Printf("Key:           %s\n", key)
		fmt.Printf("Bucket:        %s\n", svc.Bucket())
		fmt.Printf("Size:          %s (%d bytes)\n", utils.FormatBytes(headers.ContentLength), headers.ContentLength)
		fmt.Printf("Last Modified: %s\n", headers.LastModified.Format("2006-01-02 15:04:05 MST"))
		fmt.Printf("Metadata:      %s\n", utils.FormatMetadata(headers.UserMetadata))

		if statSha256 {
			digest, err := svc.Sha256(ctx, key)
			if err != nil {
				return err
			}
			fmt.Printf("SHA-256:       %s\n", digest)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statCmd)
	statCmd.Flags().BoolVar(&statSha256, "sha256", false, "Also compute the content digest")
}
