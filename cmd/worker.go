package cmd

import (
	"dsc/worker"
	"dsc/worker/priceoracle"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "dsc job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		priceStore := providePriceStore(database)

		workers := []worker.Worker{
			priceoracle.New(cfg.PriceOracle.EndPoint, cfg.Assets, priceStore),
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Infoln("workers done")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
