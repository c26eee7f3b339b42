package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dir := settings.GetDownloadDirectory(); dir != DefaultDownloadDir {
		t.Errorf("Expected default download directory %s, got %s", DefaultDownloadDir, dir)
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}

	// Empty value restores the default
	settings.SetDownloadDirectory("")
	if dir := settings.GetDownloadDirectory(); dir != DefaultDownloadDir {
		t.Errorf("Expected default download directory after reset, got %s", dir)
	}
}

func TestQualityPreset(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	preset := settings.GetQualityPreset()
	if preset != DefaultQualityPreset {
		t.Errorf("Expected default quality preset %s, got %s", DefaultQualityPreset, preset)
	}

	// Test setting custom value
	settings.SetQualityPreset(QualityAudio)
	if settings.GetQualityPreset() != QualityAudio {
		t.Errorf("Expected quality preset %s, got %s", QualityAudio, settings.GetQualityPreset())
	}

	// Unknown presets fall back to the default
	settings.SetQualityPreset(QualityPreset("ultra"))
	if settings.GetQualityPreset() != DefaultQualityPreset {
		t.Errorf("Expected fallback to %s, got %s", DefaultQualityPreset, settings.GetQualityPreset())
	}

	app.Preferences().SetString(KeyQualityPreset, "garbage")
	if settings.GetQualityPreset() != DefaultQualityPreset {
		t.Error("Stored unknown preset should read as default")
	}
}

func TestQualityPresetFormat(t *testing.T) {
	tests := []struct {
		preset   QualityPreset
		expected string
	}{
		{QualityBest, "bestvideo+bestaudio/best"},
		{QualityMedium, "bestvideo[height<=720]+bestaudio/best[height<=720]"},
		{QualityAudio, "bestaudio/best"},
		{QualityPreset("unknown"), "bestvideo+bestaudio/best"},
	}

	for _, tt := range tests {
		if got := tt.preset.Format(); got != tt.expected {
			t.Errorf("preset %s: expected %q, got %q", tt.preset, tt.expected, got)
		}
	}
}

func TestFilenameTemplate(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	template := settings.GetFilenameTemplate()
	if template != DefaultFilenameTemplate {
		t.Errorf("Expected default filename template %s, got %s", DefaultFilenameTemplate, template)
	}

	// Test setting custom value
	customTemplate := "%(uploader)s - %(title)s.%(ext)s"
	settings.SetFilenameTemplate(customTemplate)

	if settings.GetFilenameTemplate() != customTemplate {
		t.Errorf("Expected filename template %s, got %s", customTemplate, settings.GetFilenameTemplate())
	}

	// Test empty template (should use default)
	settings.SetFilenameTemplate("")
	if settings.GetFilenameTemplate() != DefaultFilenameTemplate {
		t.Error("Empty template should fallback to default")
	}
}

func TestPlaylistFlags(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetNoPlaylist() != DefaultNoPlaylist {
		t.Errorf("Expected default no-playlist %v", DefaultNoPlaylist)
	}
	if settings.GetInspectPlaylists() != DefaultInspectPlaylists {
		t.Errorf("Expected default inspect-playlists %v", DefaultInspectPlaylists)
	}

	settings.SetNoPlaylist(false)
	settings.SetInspectPlaylists(false)

	if settings.GetNoPlaylist() {
		t.Error("Expected no-playlist to be disabled")
	}
	if settings.GetInspectPlaylists() {
		t.Error("Expected inspect-playlists to be disabled")
	}
}

func TestGetQualityPresetOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetQualityPresetOptions()
	expectedOptions := []QualityPreset{QualityBest, QualityMedium, QualityAudio}

	if len(options) != len(expectedOptions) {
		t.Errorf("Expected %d quality options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Expected quality option %s at index %d, got %s", expected, i, options[i])
		}
	}
}

func TestDownloadOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetDownloadDirectory("/videos")
	settings.SetQualityPreset(QualityMedium)

	opts := settings.DownloadOptions()
	if opts.OutputDir != "/videos" {
		t.Errorf("Expected output dir /videos, got %s", opts.OutputDir)
	}
	if opts.Format != FormatMedium {
		t.Errorf("Expected format %s, got %s", FormatMedium, opts.Format)
	}
	if opts.FilenameTemplate != DefaultFilenameTemplate {
		t.Errorf("Expected default filename template, got %s", opts.FilenameTemplate)
	}
	if !opts.NoPlaylist {
		t.Error("Expected no-playlist to be enabled by default")
	}
	if opts.Timeout != 0 {
		t.Errorf("Expected no timeout, got %s", opts.Timeout)
	}
}
