package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/ytget/video-downloader/internal/download"
)

// AppName names the config directory under the XDG config home
const AppName = "video-downloader"

// EnvPrefix is the prefix for environment overrides (VDL_DOWNLOAD_DIR, ...)
const EnvPrefix = "VDL"

// File is the headless configuration loaded from YAML and the environment
type File struct {
	Download struct {
		Dir              string        `mapstructure:"dir"`
		Quality          string        `mapstructure:"quality"`
		FilenameTemplate string        `mapstructure:"filename_template"`
		NoPlaylist       bool          `mapstructure:"no_playlist"`
		Timeout          time.Duration `mapstructure:"timeout"`
	} `mapstructure:"download"`

	YTDLP struct {
		Executable  string `mapstructure:"executable"`
		AutoInstall bool   `mapstructure:"auto_install"`
	} `mapstructure:"ytdlp"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/video-downloader/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load reads the config file at path. A missing file is not an error: the
// defaults and environment overrides still apply.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("download.dir", download.DefaultOutputDir)
	v.SetDefault("download.quality", string(DefaultQualityPreset))
	v.SetDefault("download.filename_template", download.DefaultFilenameTemplate)
	v.SetDefault("download.no_playlist", DefaultNoPlaylist)
	v.SetDefault("download.timeout", time.Duration(0))
	v.SetDefault("ytdlp.executable", "")
	v.SetDefault("ytdlp.auto_install", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Env binding
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg File
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values viper cannot
func (f *File) Validate() error {
	if !QualityPreset(f.Download.Quality).Valid() {
		return fmt.Errorf("unknown download.quality %q (want best, medium or audio)", f.Download.Quality)
	}
	if f.Download.Timeout < 0 {
		return fmt.Errorf("download.timeout must not be negative, got %s", f.Download.Timeout)
	}
	return nil
}

// DownloadOptions returns the orchestrator configuration
func (f *File) DownloadOptions() download.Options {
	return download.Options{
		OutputDir:        f.Download.Dir,
		FilenameTemplate: f.Download.FilenameTemplate,
		Format:           QualityPreset(f.Download.Quality).Format(),
		NoPlaylist:       f.Download.NoPlaylist,
		Timeout:          f.Download.Timeout,
	}
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
