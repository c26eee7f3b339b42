package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/video-downloader/internal/console"
	"github.com/ytget/video-downloader/internal/download"
	"github.com/ytget/video-downloader/internal/model"
)

func newOrchestrator(t *testing.T, stdout *bytes.Buffer, collab download.Collaborator) *download.Orchestrator {
	t.Helper()
	opts := download.DefaultOptions()
	opts.OutputDir = filepath.Join(t.TempDir(), "Downloads")
	return download.NewOrchestrator(collab, console.NewRelay(stdout), opts)
}

func TestExecute_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer
	collab := download.CollaboratorFunc(func(ctx context.Context, job download.Job) error {
		job.OnProgress(model.Progress{Status: model.ProgressDownloading, Percent: "45%", Speed: "1.2MiB/s"})
		job.OnProgress(model.Progress{Status: model.ProgressFinished})
		return nil
	})

	code := execute(context.Background(), newOrchestrator(t, &stdout, collab), "https://example.com/video", &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	out := stdout.String()
	for _, line := range []string{
		"Starting download...",
		"Downloading... 45% completed",
		"Speed: 1.2MiB/s",
		"ETA: Unknown seconds",
		"Download finished. Writing file to disk...",
		"Download completed!",
		msgSucceeded,
	} {
		assert.Contains(t, out, line)
	}
	assert.Less(t, strings.Index(out, "Starting download..."), strings.Index(out, "Download completed!"))
	assert.Empty(t, stderr.String())
}

func TestExecute_InvalidURL(t *testing.T) {
	var stdout, stderr bytes.Buffer
	collab := download.CollaboratorFunc(func(ctx context.Context, job download.Job) error {
		t.Error("collaborator must not be called")
		return nil
	})

	code := execute(context.Background(), newOrchestrator(t, &stdout, collab), "  ", &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), msgInvalidURL)
}

func TestExecute_Failure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	collab := download.CollaboratorFunc(func(ctx context.Context, job download.Job) error {
		return errors.New("Unsupported URL: https://example.com/video")
	})

	code := execute(context.Background(), newOrchestrator(t, &stdout, collab), "https://example.com/video", &stdout, &stderr)

	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stdout.String(), "An error occurred.")
	assert.Contains(t, stderr.String(), "An error occurred: Unsupported URL: https://example.com/video")
}

func TestExecute_Cancelled(t *testing.T) {
	var stdout, stderr bytes.Buffer
	collab := download.CollaboratorFunc(func(ctx context.Context, job download.Job) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := execute(ctx, newOrchestrator(t, &stdout, collab), "https://example.com/video", &stdout, &stderr)

	assert.Equal(t, exitCancelled, code)
	assert.Contains(t, stdout.String(), "Download cancelled.")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-version"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "vdl dev")
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-nope"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "usage: vdl")
}

func TestRun_BadConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Setenv("VDL_DOWNLOAD_QUALITY", "ultra")

	code := run([]string{"-conf", filepath.Join(t.TempDir(), "none.yaml"), "https://example.com/video"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "ultra")
}

func TestRun_RequiresExactlyOneURL(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "none.yaml")

	for _, args := range [][]string{
		{"-conf", conf},
		{"-conf", conf, "https://example.com/one", "https://example.com/two"},
	} {
		var stdout, stderr bytes.Buffer

		code := run(args, &stdout, &stderr)

		assert.Equal(t, exitUsage, code, "args %v", args)
		assert.Contains(t, stderr.String(), "usage: vdl")
		assert.Empty(t, stdout.String())
	}
}
