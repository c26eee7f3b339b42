package download

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/video-downloader/internal/model"
)

// DefaultProgressInterval is how often yt-dlp progress is forwarded
const DefaultProgressInterval = 500 * time.Millisecond

// YTDLP is the Collaborator backed by the yt-dlp executable
type YTDLP struct {
	executable       string
	autoInstall      bool
	progressInterval time.Duration

	installOnce sync.Once
	installErr  error
}

// NewYTDLP creates a yt-dlp collaborator. An empty executable uses the one
// found on PATH (or the one installed by go-ytdlp when autoInstall is set).
func NewYTDLP(executable string, autoInstall bool) *YTDLP {
	return &YTDLP{
		executable:       executable,
		autoInstall:      autoInstall,
		progressInterval: DefaultProgressInterval,
	}
}

// SetProgressInterval sets the progress callback frequency
func (y *YTDLP) SetProgressInterval(interval time.Duration) {
	if interval > 0 {
		y.progressInterval = interval
	}
}

// Download runs yt-dlp for job.URL and blocks until it exits
func (y *YTDLP) Download(ctx context.Context, job Job) error {
	if err := y.ensureInstalled(ctx); err != nil {
		return err
	}

	dl := ytdlp.New().
		Format(job.Format).
		Output(job.OutputTemplate)

	if job.NoPlaylist {
		dl = dl.NoPlaylist()
	}
	if y.executable != "" {
		dl = dl.SetExecutable(y.executable)
	}

	dl.ProgressFunc(y.progressInterval, func(update ytdlp.ProgressUpdate) {
		p, ok := translateProgress(update, time.Now())
		if ok && job.OnProgress != nil {
			job.OnProgress(p)
		}
	})

	_, err := dl.Run(ctx, job.URL)
	return err
}

// ensureInstalled downloads yt-dlp once when auto-install is enabled and no
// explicit executable was configured
func (y *YTDLP) ensureInstalled(ctx context.Context) error {
	if !y.autoInstall || y.executable != "" {
		return nil
	}

	y.installOnce.Do(func() {
		slog.Info("ensuring yt-dlp is installed")
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			y.installErr = fmt.Errorf("failed to install yt-dlp: %w", err)
		}
	})
	return y.installErr
}

// translateProgress maps a yt-dlp progress update to a progress notification.
// Statuses other than downloading and finished are ignored.
func translateProgress(update ytdlp.ProgressUpdate, now time.Time) (model.Progress, bool) {
	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		p := model.Progress{Status: model.ProgressDownloading}

		if update.TotalBytes > 0 {
			percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
			p.Percent = fmt.Sprintf("%.1f%%", percent)
		}

		if !update.Started.IsZero() && update.DownloadedBytes > 0 {
			elapsed := now.Sub(update.Started).Seconds()
			if elapsed > 0 {
				p.Speed = formatSpeed(float64(update.DownloadedBytes) / elapsed)
			}
		}

		if update.TotalBytes > 0 && update.DownloadedBytes > 0 && !update.Started.IsZero() {
			if eta := update.ETA(); eta > 0 {
				p.ETA = strconv.Itoa(int(eta.Round(time.Second).Seconds()))
			}
		}
		return p, true

	case ytdlp.ProgressStatusFinished:
		return model.Progress{Status: model.ProgressFinished}, true
	}

	return model.Progress{}, false
}

// formatSpeed renders bytes per second the way yt-dlp does ("1.2MiB/s")
func formatSpeed(bytesPerSecond float64) string {
	if bytesPerSecond <= 0 {
		return ""
	}
	return strings.ReplaceAll(humanize.IBytes(uint64(bytesPerSecond)), " ", "") + "/s"
}
