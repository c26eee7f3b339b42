package download

import (
	"path/filepath"
	"time"
)

// Defaults for the download configuration
const (
	DefaultOutputDir        = "Downloads"
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultFormat           = "bestvideo+bestaudio/best"
)

// Options is the fixed configuration applied to every request
type Options struct {
	OutputDir        string
	FilenameTemplate string
	Format           string
	NoPlaylist       bool

	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		OutputDir:        DefaultOutputDir,
		FilenameTemplate: DefaultFilenameTemplate,
		Format:           DefaultFormat,
	}
}

// withDefaults fills empty fields with their defaults
func (o Options) withDefaults() Options {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.FilenameTemplate == "" {
		o.FilenameTemplate = DefaultFilenameTemplate
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Timeout < 0 {
		o.Timeout = 0
	}
	return o
}

// OutputTemplate returns the yt-dlp output template scoped to OutputDir
func (o Options) OutputTemplate() string {
	o = o.withDefaults()
	return filepath.Join(o.OutputDir, o.FilenameTemplate)
}
