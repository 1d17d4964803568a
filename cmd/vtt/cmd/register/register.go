package register

import (
	"fmt"

	"github.com/spf13/cobra"
	"video-transcriber/cmd/vtt/cmd/shared"
	"video-transcriber/internal/app"
	"video-transcriber/internal/app/model"
)

var (
	videoID string
	fileKey string
)

func init() {
	Cmd.Flags().StringVar(&videoID, "id", "", "video id")
	Cmd.Flags().StringVar(&fileKey, "key", "", "object key of the uploaded video, e.g. uploads/v1.mp4")

	Cmd.MarkFlagRequired("id")
	Cmd.MarkFlagRequired("key")
}

// Cmd represents the register command
var Cmd = &cobra.Command{
	Use:   "register",
	Short: "Add an uploaded video to the record store",
	Long: `Add an uploaded video to the record store

- The video starts with status NONE and no transcription`,
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

		video := &model.Video{ID: videoID, FileKey: fileKey}
		if err := dao.Insert(cmd.Context(), video); err != nil {
			return err
		}
		fmt.Printf("registered %s (%s)\n", video.ID, video.FileKey)
		return nil
	},
}
