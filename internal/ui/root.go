package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-downloader/internal/config"
	"github.com/ytget/video-downloader/internal/download"
	"github.com/ytget/video-downloader/internal/model"
	"github.com/ytget/video-downloader/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	orchestrator *download.Orchestrator
	inspector    *platform.PlaylistInspector
	statusLog    *StatusLog
	logger       *slog.Logger

	urlEntry    *widget.Entry
	downloadBtn *widget.Button
	cancelBtn   *widget.Button
	openBtn     *widget.Button
	activity    *widget.ProgressBarInfinite
	busy        bool

	// called on the UI goroutine once an outcome or playlist summary is shown
	outcomeShown  func(model.Outcome)
	playlistShown func()

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI. statusLog must be the relay
// (or part of the relay) the orchestrator reports to.
func NewRootUI(window fyne.Window, settings *config.Settings, orchestrator *download.Orchestrator, statusLog *StatusLog) *RootUI {
	ui := &RootUI{
		window:       window,
		settings:     settings,
		orchestrator: orchestrator,
		inspector:    platform.NewPlaylistInspector(),
		statusLog:    statusLog,
		logger:       slog.Default(),
	}

	window.SetTitle(AppTitle)

	ui.orchestrator.SetStateCallback(ui.onStateChange)

	ui.setupUI()
	return ui
}

// SetLogger sets the logger used for UI events
func (ui *RootUI) SetLogger(logger *slog.Logger) {
	if logger != nil {
		ui.logger = logger
	}
}

// SetPlaylistInspector replaces the playlist inspector
func (ui *RootUI) SetPlaylistInspector(inspector *platform.PlaylistInspector) {
	if inspector != nil {
		ui.inspector = inspector
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Create URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(URLPlaceholder)
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.downloadBtn = widget.NewButton(LabelDownload, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.cancelBtn = widget.NewButton(LabelCancel, ui.onCancelClick)
	ui.cancelBtn.Disable()

	ui.openBtn = widget.NewButton(IconFolder+" "+LabelOpenFolder, ui.onOpenFolder)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn,
		container.NewHBox(ui.downloadBtn, ui.cancelBtn), ui.urlEntry)

	// Notification panel under URL input (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	ui.activity = widget.NewProgressBarInfinite()
	ui.activity.Stop()
	ui.activity.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer, ui.activity)
	bottom := container.NewHBox(ui.openBtn)

	logSpacer := canvas.NewRectangle(color.Transparent)
	logSpacer.SetMinSize(fyne.NewSize(0, StatusLogMinHeight))
	logArea := container.NewStack(logSpacer, ui.statusLog.Widget())

	content := container.NewBorder(topCombined, bottom, nil, nil, logArea)
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(LabelSettings, ui.onShowSettings)
	openItem := fyne.NewMenuItem(MenuOpenDownloadDir, ui.onOpenFolder)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(MenuFile, openItem, fyne.NewMenuItemSeparator(), settingsItem),
	))
}

// onDownloadClick starts a request for the URL in the entry. Validation and
// the single-request guard live in the orchestrator.
func (ui *RootUI) onDownloadClick() {
	rawURL := ui.urlEntry.Text

	ui.orchestrator.SetOptions(ui.settings.DownloadOptions())

	err := ui.orchestrator.Start(context.Background(), rawURL, ui.onOutcome)
	switch {
	case errors.Is(err, download.ErrInvalidInput):
		dialog.ShowError(errors.New(MsgInvalidURL), ui.window)
		return
	case errors.Is(err, download.ErrBusy):
		ui.showNotification(MsgBusy, false)
		return
	case err != nil:
		dialog.ShowError(err, ui.window)
		return
	}

	if ui.settings.GetInspectPlaylists() && platform.IsPlaylistURL(rawURL) {
		ui.inspectPlaylist(rawURL)
	}
}

// onOutcome shows the alert for a finished request. It is called on the
// orchestrator's worker goroutine.
func (ui *RootUI) onOutcome(outcome model.Outcome) {
	fyne.Do(func() {
		switch {
		case outcome.Succeeded():
			ui.urlEntry.SetText("")
			dialog.ShowInformation(TitleSuccess, MsgDownloadSucceeded, ui.window)
		case outcome.Kind == model.KindCancelled:
			ui.setNotification(MsgCancelled, false)
		default:
			dialog.ShowError(errors.New(ErrorAlertPrefix+outcome.Message), ui.window)
		}

		if ui.outcomeShown != nil {
			ui.outcomeShown(outcome)
		}
	})
}

// onStateChange toggles the controls when a request starts or ends. Widgets
// are only touched when the busy flag flips.
func (ui *RootUI) onStateChange(state model.RequestState) {
	fyne.Do(func() {
		switch {
		case state.IsActive() && !ui.busy:
			ui.busy = true
			ui.downloadBtn.Disable()
			ui.cancelBtn.Enable()
			ui.activity.Show()
			ui.activity.Start()
		case state == model.StateIdle && ui.busy:
			ui.busy = false
			ui.downloadBtn.Enable()
			ui.cancelBtn.Disable()
			ui.activity.Stop()
			ui.activity.Hide()
		}
	})
}

func (ui *RootUI) onCancelClick() {
	if ui.orchestrator.Cancel() {
		ui.logger.Info("cancel requested")
	}
}

// onOpenFolder opens the download directory in the system file manager
func (ui *RootUI) onOpenFolder() {
	dir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	if err := platform.OpenDirectory(dir); err != nil {
		ui.logger.Warn("failed to open download directory", slog.String("dir", dir), slog.Any("err", err))
		dialog.ShowError(err, ui.window)
	}
}

// inspectPlaylist summarizes a playlist URL in the notification panel. It
// never writes to the status log.
func (ui *RootUI) inspectPlaylist(rawURL string) {
	ui.showNotification(MsgInspectingPlaylist, true)

	go func() {
		var message string
		summary, err := ui.inspector.Inspect(context.Background(), rawURL)
		if err != nil {
			ui.logger.Warn("playlist inspection failed", slog.String("url", rawURL), slog.Any("err", err))
			message = MsgPlaylistFailed + ": " + err.Error()
		} else {
			ui.logger.Info("playlist inspected",
				slog.String("id", summary.ID),
				slog.Int("entries", summary.Count()),
			)
			message = fmt.Sprintf(PlaylistSummaryFormat, summary.Title, summary.Count())
		}

		fyne.Do(func() {
			ui.setNotification(message, false)
			if ui.playlistShown != nil {
				ui.playlistShown()
			}
		})
	}()
}

// showNotification displays a message in the notification panel under the URL input.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	fyne.Do(func() {
		ui.setNotification(message, spinning)
	})
}

// setNotification updates the notification panel. Must run on the UI goroutine.
func (ui *RootUI) setNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		ui.orchestrator.SetOptions(ui.settings.DownloadOptions())
	})
}
