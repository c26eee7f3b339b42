package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Window
const (
	AppTitle = "Video Downloader"

	WindowWidth  float32 = 640
	WindowHeight float32 = 420
)

// Labels
const (
	LabelDownload       = "Download"
	LabelCancel         = "Cancel"
	LabelOpenFolder     = "Open folder"
	LabelSettings       = "Settings"
	URLPlaceholder      = "Enter video URL"
	MenuFile            = "File"
	MenuOpenDownloadDir = "Open Download Folder"
)

// Alert and notification texts
const (
	TitleSuccess          = "Success"
	MsgDownloadSucceeded  = "Video downloaded successfully!"
	ErrorAlertPrefix      = "An error occurred: "
	MsgInvalidURL         = "Please enter a valid video URL!"
	MsgBusy               = "A download is already in progress"
	MsgCancelled          = "Download cancelled"
	MsgInspectingPlaylist = "Inspecting playlist..."
	MsgPlaylistFailed     = "Playlist inspection failed"
	PlaylistSummaryFormat = "Playlist: %s (%d videos)"
)

// Layout sizing
const (
	StatusLogMinHeight float32 = 240
)
