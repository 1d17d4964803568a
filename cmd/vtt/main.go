package main

import (
	"fmt"
	"os"

	"video-transcriber/cmd/vtt/cmd"
	"video-transcriber/internal/config"
)

// @title Video Transcriber API
// @version 1.0
// @description Downloads stored videos, extracts their audio and records speech-to-text transcriptions.
// @host localhost:8080
// @BasePath /
func main() {
	// Missing credentials only fail the requests that need them
	if _, err := config.InitializeConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
