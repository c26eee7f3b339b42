package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, opening the output folder, and playlist inspection via
// github.com/ytget/ytdlp.
