package download

import (
	"context"

	"github.com/ytget/video-downloader/internal/model"
)

// Job is everything the collaborator needs for one download
type Job struct {
	URL            string
	OutputTemplate string
	Format         string
	NoPlaylist     bool

	// OnProgress receives progress notifications. It may be called from any
	// goroutine while Download is running.
	OnProgress func(model.Progress)
}

// Collaborator performs the actual download. It blocks until the media is
// written (or the context is cancelled) and returns the underlying error
// unchanged.
type Collaborator interface {
	Download(ctx context.Context, job Job) error
}

// CollaboratorFunc adapts a function to the Collaborator interface
type CollaboratorFunc func(ctx context.Context, job Job) error

// Download calls f(ctx, job)
func (f CollaboratorFunc) Download(ctx context.Context, job Job) error {
	return f(ctx, job)
}
