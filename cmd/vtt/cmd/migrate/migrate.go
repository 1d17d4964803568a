package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"video-transcriber/cmd/vtt/cmd/shared"
	"video-transcriber/internal/app"
)

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the videos table in the configured record store",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := shared.NewLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		// Opening the store creates the schema
		_, cleanup, err := app.InitializeVideoDAO(cmd.Context(), logger)
		if err != nil {
			return err
		}
		defer cleanup()

		fmt.Println("schema is up to date")
		return nil
	},
}
