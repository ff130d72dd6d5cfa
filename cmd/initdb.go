package cmd

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the usuarios and grupos collections",
	Long:  `This job ensures the two collections exist before the server is started.`,
	Run: func(cmd *cobra.Command, args []string) {

		commonSetUp()
		defer directorioDB.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		log.Info().Msg("Initializing collections...")
		if err := directorioDB.InitCollections(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize collections")
		}

		log.Info().Msg("Collections initialized")
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}
