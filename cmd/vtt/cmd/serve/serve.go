package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"video-transcriber/cmd/vtt/cmd/shared"
	"video-transcriber/internal/app"
)

var shutdownTimeout time.Duration

func init() {
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second,
		"how long in-flight requests may run after a stop signal")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API

- POST /transcribe with {"videoId": "..."} transcribes a registered video
- GET /videos/{id}/transcription reads the stored status
- /health, /metrics and /swagger/index.html are served alongside`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := shared.NewLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, cleanup, err := app.InitializeApp(ctx, app.ConfigPath(shared.ConfigPath), logger, nil)
		if err != nil {
			return err
		}
		defer cleanup()

		logger.Info("pipeline configured",
			zap.String("processing_guard", application.Config.ProcessingGuard),
			zap.String("scratch_dir", application.Config.ScratchDir),
		)

		errCh, err := application.Server.Start()
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
		case err := <-errCh:
			if err != nil {
				return err
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return application.Server.Shutdown(shutdownCtx)
	},
}
