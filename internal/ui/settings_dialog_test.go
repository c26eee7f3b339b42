package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/video-downloader/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	saved := false
	sd := NewSettingsDialog(settings, window, func() { saved = true })
	sd.loadCurrentSettings()

	if sd.downloadDirEntry.Text != config.DefaultDownloadDir {
		t.Errorf("Expected download dir %s, got %s", config.DefaultDownloadDir, sd.downloadDirEntry.Text)
	}
	if sd.qualitySelect.Selected != string(config.DefaultQualityPreset) {
		t.Errorf("Expected quality %s, got %s", config.DefaultQualityPreset, sd.qualitySelect.Selected)
	}

	sd.downloadDirEntry.SetText("/tmp/videos")
	sd.qualitySelect.SetSelected(string(config.QualityAudio))
	sd.filenameEntry.SetText("")
	sd.noPlaylistCheck.SetChecked(false)
	sd.onSave(true)

	if !saved {
		t.Error("Expected onSaved callback")
	}
	if settings.GetDownloadDirectory() != "/tmp/videos" {
		t.Errorf("Expected saved download dir, got %s", settings.GetDownloadDirectory())
	}
	if settings.GetQualityPreset() != config.QualityAudio {
		t.Errorf("Expected saved quality, got %s", settings.GetQualityPreset())
	}
	if settings.GetFilenameTemplate() != config.DefaultFilenameTemplate {
		t.Error("Empty template should restore the default")
	}
	if settings.GetNoPlaylist() {
		t.Error("Expected no-playlist to be disabled")
	}
}

func TestSettingsDialog_CancelKeepsSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, window, nil)
	sd.loadCurrentSettings()

	sd.downloadDirEntry.SetText("/elsewhere")
	sd.onSave(false)

	if settings.GetDownloadDirectory() != config.DefaultDownloadDir {
		t.Errorf("Cancel should not save, got %s", settings.GetDownloadDirectory())
	}
}
