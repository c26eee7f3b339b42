package download

import (
	"fmt"

	"github.com/ytget/video-downloader/internal/model"
)

// Status lines sent to the relay
const (
	LineStarting   = "Starting download..."
	LineFinalizing = "Download finished. Writing file to disk..."
	LineCompleted  = "Download completed!"
	LineFailed     = "An error occurred."
	LineCancelled  = "Download cancelled."
)

// progressLines renders a downloading notification as three status lines
func progressLines(p model.Progress) []string {
	return []string{
		fmt.Sprintf("Downloading... %s completed", p.PercentOrUnknown()),
		fmt.Sprintf("Speed: %s", p.SpeedOrUnknown()),
		fmt.Sprintf("ETA: %s seconds", p.ETAOrUnknown()),
	}
}
