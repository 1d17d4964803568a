package export

import (
	"fmt"

	"github.com/spf13/cobra"
	"video-transcriber/cmd/vtt/cmd/shared"
	"video-transcriber/internal/app"
	"video-transcriber/internal/app/converter/export"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "set the output .xlsx path")

	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export completed transcriptions to excel",
	Long: `Export completed transcriptions to excel

- Every COMPLETED video becomes one row, most recently updated first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := shared.NewLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		dao, cleanup, err := app.InitializeVideoDAO(cmd.Context(), logger)
		if err != nil {
			return err
		}
		defer cleanup()

		videos, err := dao.ListCompleted(cmd.Context())
		if err != nil {
			return err
		}

		if err := export.ToExcel(videos, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("export finished, %d rows written to %v\n", len(videos), outputFilePath)
		return nil
	},
}
