package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/video-downloader/internal/config"
	"github.com/ytget/video-downloader/internal/download"
	"github.com/ytget/video-downloader/internal/logging"
	"github.com/ytget/video-downloader/internal/status"
	"github.com/ytget/video-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.video-downloader"

	// LogLevelEnv selects the desktop log level (debug, info, warn, error)
	LogLevelEnv = "VDL_LOG_LEVEL"
)

func main() {
	logger := logging.New(logging.Config{
		Format: logging.FormatText,
		Level:  logging.ParseLevel(os.Getenv(LogLevelEnv)),
	})
	slog.SetDefault(logger)

	logger.Info("starting", slog.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(ui.AppTitle)

	settings := config.NewSettings(myApp)

	// The desktop build fetches yt-dlp on first use when it is not installed
	collab := download.NewYTDLP("", true)

	statusLog := ui.NewStatusLog()
	relay := status.NewMulti(statusLog, status.NewLogRelay(logger))

	orchestrator := download.NewOrchestrator(collab, relay, settings.DownloadOptions())
	orchestrator.SetLogger(logger)

	rootUI := ui.NewRootUI(myWindow, settings, orchestrator, statusLog)
	rootUI.SetLogger(logger)

	myWindow.ShowAndRun()
}
