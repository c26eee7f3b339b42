package download

// Package download implements the download pipeline built on top of yt-dlp
// (via github.com/lrstanley/go-ytdlp). The Orchestrator validates a request,
// prepares the output directory, delegates to a Collaborator and relays its
// progress notifications as ordered status lines.
