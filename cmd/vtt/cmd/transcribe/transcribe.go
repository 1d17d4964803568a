package transcribe

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"video-transcriber/cmd/vtt/cmd/shared"
	"video-transcriber/internal/app"
	"video-transcriber/internal/app/converter"
	"video-transcriber/internal/app/pipeline"
)

var (
	videoIDs     []string
	parallel     int
	showProgress bool
)

func init() {
	Cmd.Flags().StringSliceVarP(&videoIDs, "video", "v", nil, "video id to transcribe (repeatable)")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "how many videos to transcribe at once")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "force progress bars even without a terminal")

	Cmd.MarkFlagRequired("video")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe registered videos without the HTTP API",
	Long: `Transcribe registered videos without the HTTP API

- Runs the same controller as POST /transcribe for every --video
- A COMPLETED video prints its stored transcription without a new run
- With --parallel 1 each run shows a fetch/extract/transcribe progress bar`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := shared.NewLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		progress := converter.NewProgressManager(converter.ProgressConfig{
			Enabled: converter.ShouldShowProgress(showProgress),
			Writer:  os.Stderr,
		})

		// Stage bars only make sense while runs are sequential
		var observer pipeline.Observer
		if parallel <= 1 && len(videoIDs) == 1 {
			observer = converter.NewStageProgress(progress, videoIDs[0])
		}

		application, cleanup, err := app.InitializeApp(cmd.Context(), app.ConfigPath(shared.ConfigPath), logger, observer)
		if err != nil {
			return err
		}
		defer cleanup()

		c := converter.NewConverter(application.Service, progress, logger)
		defer c.Close()

		failed := 0
		for _, outcome := range c.Convert(cmd.Context(), videoIDs, parallel) {
			if outcome.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "%s: %v\n", outcome.VideoID, outcome.Err)
				continue
			}
			fmt.Printf("%s:\n%s\n", outcome.VideoID, outcome.Response.Transcription)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d videos failed", failed, len(videoIDs))
		}
		return nil
	},
}
