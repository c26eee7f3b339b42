package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/video-downloader/internal/download"
)

// Quality presets for downloads
type QualityPreset string

const (
	QualityBest   QualityPreset = "best"
	QualityMedium QualityPreset = "medium"
	QualityAudio  QualityPreset = "audio"
)

// yt-dlp format selectors per preset
const (
	FormatBest   = download.DefaultFormat
	FormatMedium = "bestvideo[height<=720]+bestaudio/best[height<=720]"
	FormatAudio  = "bestaudio/best"
)

// Format returns the yt-dlp format selector for the preset. Unknown presets
// select the best available quality.
func (q QualityPreset) Format() string {
	switch q {
	case QualityMedium:
		return FormatMedium
	case QualityAudio:
		return FormatAudio
	default:
		return FormatBest
	}
}

// Valid reports whether q is a known preset
func (q QualityPreset) Valid() bool {
	switch q {
	case QualityBest, QualityMedium, QualityAudio:
		return true
	}
	return false
}

// Settings keys for Fyne preferences
const (
	KeyDownloadDir      = "download_directory"
	KeyQualityPreset    = "quality_preset"
	KeyFilenameTemplate = "filename_template"
	KeyNoPlaylist       = "no_playlist"
	KeyInspectPlaylists = "inspect_playlists"
)

// Default values
const (
	DefaultDownloadDir      = download.DefaultOutputDir
	DefaultQualityPreset    = QualityBest
	DefaultFilenameTemplate = download.DefaultFilenameTemplate
	DefaultNoPlaylist       = true
	DefaultInspectPlaylists = true
)

// Settings manages desktop configuration stored in Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		s.SetDownloadDirectory(DefaultDownloadDir)
		return DefaultDownloadDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory. An empty value restores
// the default.
func (s *Settings) SetDownloadDirectory(dir string) {
	if dir == "" {
		dir = DefaultDownloadDir
	}
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetQualityPreset returns the configured quality preset
func (s *Settings) GetQualityPreset() QualityPreset {
	preset := QualityPreset(s.app.Preferences().String(KeyQualityPreset))
	if !preset.Valid() {
		s.SetQualityPreset(DefaultQualityPreset)
		return DefaultQualityPreset
	}
	return preset
}

// SetQualityPreset sets the quality preset
func (s *Settings) SetQualityPreset(preset QualityPreset) {
	if !preset.Valid() {
		preset = DefaultQualityPreset
	}
	s.app.Preferences().SetString(KeyQualityPreset, string(preset))
}

// GetFilenameTemplate returns the filename template
func (s *Settings) GetFilenameTemplate() string {
	template := s.app.Preferences().String(KeyFilenameTemplate)
	if template == "" {
		s.SetFilenameTemplate(DefaultFilenameTemplate)
		return DefaultFilenameTemplate
	}
	return template
}

// SetFilenameTemplate sets the filename template
func (s *Settings) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	s.app.Preferences().SetString(KeyFilenameTemplate, template)
}

// GetNoPlaylist returns whether playlist URLs download only the linked video
func (s *Settings) GetNoPlaylist() bool {
	return s.app.Preferences().BoolWithFallback(KeyNoPlaylist, DefaultNoPlaylist)
}

// SetNoPlaylist sets whether playlist URLs download only the linked video
func (s *Settings) SetNoPlaylist(noPlaylist bool) {
	s.app.Preferences().SetBool(KeyNoPlaylist, noPlaylist)
}

// GetInspectPlaylists returns whether playlist URLs are summarized in the UI
func (s *Settings) GetInspectPlaylists() bool {
	return s.app.Preferences().BoolWithFallback(KeyInspectPlaylists, DefaultInspectPlaylists)
}

// SetInspectPlaylists sets whether playlist URLs are summarized in the UI
func (s *Settings) SetInspectPlaylists(inspect bool) {
	s.app.Preferences().SetBool(KeyInspectPlaylists, inspect)
}

// GetQualityPresetOptions returns available quality preset options
func (s *Settings) GetQualityPresetOptions() []QualityPreset {
	return []QualityPreset{QualityBest, QualityMedium, QualityAudio}
}

// DownloadOptions returns the orchestrator configuration for the current settings
func (s *Settings) DownloadOptions() download.Options {
	return download.Options{
		OutputDir:        s.GetDownloadDirectory(),
		FilenameTemplate: s.GetFilenameTemplate(),
		Format:           s.GetQualityPreset().Format(),
		NoPlaylist:       s.GetNoPlaylist(),
	}
}
