package cmd

import (
	"fmt"

	"bucket-manager/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	lsPrefix string
	lsAll    bool
	lsLong   bool
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List objects in the configured bucket",
	Long: `Lists object keys in the bucket. By default directory markers (keys
ending in "/") are excluded; use --all to include them. --prefix narrows the
listing, --long adds size and modification time per key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, logg, err := setupService(ctx)
		if err != nil {
			return err
		}
		defer logg.Sync()

		var keys []string
		if lsAll {
			keys, err = svc.ListObjects(ctx)
		} else {
			keys, err = svc.ListFiles(ctx, lsPrefix)
		}
		if err != nil {
			return err
		}

		for _, key := range keys {
			if !lsLong {
				fmt.Println(key)
				continue
			}

			headers, err := svc.Stat(ctx, key)
			if err != nil {
				logg.Warn("Stat failed during listing", zap.String("key", key), zap.Error(err))
				fmt.Println(key)
				continue
			}
			fmt.Printf("%-12s %s %s\n",
				utils.FormatBytes(headers.ContentLength),
				headers.LastModified.Format("2006-01-02 15:04:05"),
				key)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVar(&lsPrefix, "prefix", "", "Only list keys starting with this prefix")
	lsCmd.Flags().BoolVar(&lsAll, "all", false, "Include directory markers")
	lsCmd.Flags().BoolVar(&lsLong, "long", false, "Show size and modification time")
}
