// Command vdl downloads a single video URL without the desktop window,
// printing the same status lines the desktop log shows.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/video-downloader/internal/config"
	"github.com/ytget/video-downloader/internal/console"
	"github.com/ytget/video-downloader/internal/download"
	"github.com/ytget/video-downloader/internal/logging"
	"github.com/ytget/video-downloader/internal/model"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Exit codes
const (
	exitOK        = 0
	exitFailed    = 1
	exitUsage     = 2
	exitCancelled = 130
)

// Alert texts
const (
	msgSucceeded  = "Video downloaded successfully!"
	msgInvalidURL = "Please enter a valid video URL!"
	msgErrPrefix  = "An error occurred: "
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vdl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFile  string
		showVersion bool
	)
	fs.StringVar(&configFile, "conf", config.DefaultConfigPath(), "Config file path")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: vdl [flags] <url>\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if showVersion {
		fmt.Fprintf(stdout, "vdl %s\n", version)
		return exitOK
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		console.Alert(stderr, err.Error())
		return exitUsage
	}

	logger := logging.New(logging.Config{
		Format: logging.ParseFormat(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Writer: stderr,
	})
	slog.SetDefault(logger)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collab := download.NewYTDLP(cfg.YTDLP.Executable, cfg.YTDLP.AutoInstall)

	orchestrator := download.NewOrchestrator(collab, console.NewRelay(stdout), cfg.DownloadOptions())
	orchestrator.SetLogger(logger)

	return execute(ctx, orchestrator, fs.Arg(0), stdout, stderr)
}

// execute submits rawURL and maps the outcome to an exit code
func execute(ctx context.Context, orchestrator *download.Orchestrator, rawURL string, stdout, stderr io.Writer) int {
	outcome := orchestrator.Submit(ctx, rawURL)

	switch outcome.Kind {
	case model.KindNone:
		fmt.Fprintln(stdout, msgSucceeded)
		return exitOK
	case model.KindInvalidInput:
		console.Alert(stderr, msgInvalidURL)
		return exitUsage
	case model.KindCancelled:
		return exitCancelled
	default:
		console.Alert(stderr, msgErrPrefix+outcome.Message)
		return exitFailed
	}
}
