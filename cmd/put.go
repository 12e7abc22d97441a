package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var putMeta []string

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put FILE KEY",
	Short: "Upload a local file under an object key",
	Long: `Uploads a file to the configured bucket, overwriting any existing
object with the same key. Repeatable --meta k=v flags attach user metadata.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		file, key := args[0], args[1]

		metadata, err := parseMetadata(putMeta)
		if err != nil {
			return err
		}

		svc, logg, err := setupService(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		return svc.Upload(ctx, file, key, metadata)
	},
}

// parseMetadata turns repeated k=v flags into a metadata mapping.
func parseMetadata(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	meta := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, found := strings.Cut(pair, "=")
		if !found || k == "" {
			return nil, fmt.Errorf("invalid metadata pair %q, expected k=v", pair)
		}
		meta[k] = v
	}
	return meta, nil
}

func init() {
	RootCmd.AddCommand(putCmd)
	putCmd.Flags().StringArrayVar(&putMeta, "meta", nil, "User metadata pair k=v (repeatable)")
}
