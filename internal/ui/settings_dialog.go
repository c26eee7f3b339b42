package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	downloadDirEntry *widget.Entry
	qualitySelect    *widget.Select
	filenameEntry    *widget.Entry
	noPlaylistCheck  *widget.Check
	inspectCheck     *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved is called after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	NewSettingsDialog(settings, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Quality preset selection
	qualityOptions := []string{}
	for _, preset := range sd.settings.GetQualityPresetOptions() {
		qualityOptions = append(qualityOptions, string(preset))
	}
	sd.qualitySelect = widget.NewSelect(qualityOptions, nil)

	// Filename template
	sd.filenameEntry = widget.NewEntry()
	sd.filenameEntry.SetPlaceHolder(config.DefaultFilenameTemplate)

	sd.noPlaylistCheck = widget.NewCheck("Download only the linked video of a playlist URL", nil)
	sd.inspectCheck = widget.NewCheck("Show playlist summary", nil)

	form := container.NewVBox(
		widget.NewLabel("Download Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Download Directory:"),
		downloadDirRow,

		widget.NewLabel("Quality Preset:"),
		sd.qualitySelect,

		widget.NewLabel("Filename Template:"),
		sd.filenameEntry,

		widget.NewSeparator(),
		widget.NewLabel("Playlists"),
		sd.noPlaylistCheck,
		sd.inspectCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		LabelSettings,
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 400))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.qualitySelect.SetSelected(string(sd.settings.GetQualityPreset()))
	sd.filenameEntry.SetText(sd.settings.GetFilenameTemplate())
	sd.noPlaylistCheck.SetChecked(sd.settings.GetNoPlaylist())
	sd.inspectCheck.SetChecked(sd.settings.GetInspectPlaylists())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if downloadDir := sd.downloadDirEntry.Text; downloadDir != "" {
		sd.settings.SetDownloadDirectory(downloadDir)
	}

	if sd.qualitySelect.Selected != "" {
		sd.settings.SetQualityPreset(config.QualityPreset(sd.qualitySelect.Selected))
	}

	// Empty template restores the default
	sd.settings.SetFilenameTemplate(sd.filenameEntry.Text)

	sd.settings.SetNoPlaylist(sd.noPlaylistCheck.Checked)
	sd.settings.SetInspectPlaylists(sd.inspectCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
