package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tealeg/xlsx"
	"video-transcriber/internal/app/model"
)

// ToExcel writes one row per video to a new workbook at outputFilePath
func ToExcel(videos []model.Video, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Video ID"
	headerRow.AddCell().Value = "File Key"
	headerRow.AddCell().Value = "Status"
	headerRow.AddCell().Value = "Duration"
	headerRow.AddCell().Value = "Updated At"
	headerRow.AddCell().Value = "Transcription"

	for _, v := range videos {
		row := sheet.AddRow()
		row.AddCell().Value = v.ID
		row.AddCell().Value = v.FileKey
		row.AddCell().Value = string(v.TranscriptionStatus)
		duration := ""
		if v.Duration != nil {
			duration = strconv.Itoa(*v.Duration)
		}
		row.AddCell().Value = duration
		row.AddCell().Value = v.UpdatedAt.Format(time.RFC3339)
		text := ""
		if v.Transcription != nil {
			text = *v.Transcription
		}
		row.AddCell().Value = text
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
