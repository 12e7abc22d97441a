package cmd

import (
	"os"

	"bucket-manager/core/config"
	"bucket-manager/core/logger"
	"bucket-manager/core/storage"
	"bucket-manager/feature/objects"

	"github.com/spf13/cobra"
)

var rmYes bool

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm KEY...",
	Short: "Delete one or more objects",
	Long: `Deletes objects from the configured bucket. A single interactive
yes/no confirmation (default no) guards the whole invocation; --yes skips it
for scripted use. Missing objects are skipped with an error notice.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		confirm := objects.Terminal(os.Stdin, os.Stdout)
		if rmYes {
			confirm = objects.AlwaysConfirm
		}

		svc, err := objects.NewService(ctx, client, cfg.Storage.Bucket, logg, confirm)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			return svc.Delete(ctx, args[0], !rmYes)
		}
		return svc.DeleteBatch(ctx, args)
	},
}

func init() {
	RootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVar(&rmYes, "yes", false, "Skip the interactive confirmation")
}
