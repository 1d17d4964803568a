package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"video-transcriber/cmd/vtt/cmd/export"
	"video-transcriber/cmd/vtt/cmd/migrate"
	"video-transcriber/cmd/vtt/cmd/register"
	"video-transcriber/cmd/vtt/cmd/serve"
	"video-transcriber/cmd/vtt/cmd/shared"
	"video-transcriber/cmd/vtt/cmd/transcribe"
	"video-transcriber/cmd/vtt/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vtt",
	Short: "Transcribe stored videos to text",
	Long: `Transcribe stored videos to text.
- Videos are registered in the record store with the object key of their upload
- vtt downloads the video, extracts a 16 kHz mono mp3 with ffmpeg and sends it to the speech-to-text service
- The transcription, its duration and the status are saved back to the record store`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(register.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&shared.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&shared.ConfigPath, "config", "c", os.Getenv("PIPELINE_CONFIG"),
		"pipeline YAML file (defaults apply when empty)")
}
