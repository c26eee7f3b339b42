package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/ytget/video-downloader/internal/model"
	"github.com/ytget/video-downloader/internal/platform"
	"github.com/ytget/video-downloader/internal/status"
)

// Orchestrator runs one download request at a time: it validates the URL,
// ensures the output directory exists, delegates to the collaborator and
// relays progress as status lines.
type Orchestrator struct {
	collab Collaborator
	relay  status.Relay
	logger *slog.Logger
	mkdir  func(dir string) error

	// one request in flight
	inflight *semaphore.Weighted

	mu      sync.Mutex
	opts    Options
	state   model.RequestState
	current *model.Request
	cancel  context.CancelFunc
	active  *activeRequest
	onState func(model.RequestState)
}

// activeRequest is the context and configuration of the request in flight
type activeRequest struct {
	ctx  context.Context
	opts Options
}

// NewOrchestrator creates an orchestrator. A nil relay discards status lines.
func NewOrchestrator(collab Collaborator, relay status.Relay, opts Options) *Orchestrator {
	if relay == nil {
		relay = status.Discard
	}
	return &Orchestrator{
		collab:   collab,
		relay:    relay,
		logger:   slog.Default(),
		mkdir:    platform.CreateDirectoryIfNotExists,
		inflight: semaphore.NewWeighted(1),
		opts:     opts.withDefaults(),
		state:    model.StateIdle,
	}
}

// SetLogger sets the logger used for request lifecycle logs
func (o *Orchestrator) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	o.mu.Lock()
	o.logger = logger
	o.mu.Unlock()
}

// SetOptions replaces the configuration used by subsequent requests
func (o *Orchestrator) SetOptions(opts Options) {
	o.mu.Lock()
	o.opts = opts.withDefaults()
	o.mu.Unlock()
}

// Options returns the current configuration
func (o *Orchestrator) Options() Options {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opts
}

// SetStateCallback sets the function called on every state transition. It is
// called from the goroutine running the request.
func (o *Orchestrator) SetStateCallback(callback func(model.RequestState)) {
	o.mu.Lock()
	o.onState = callback
	o.mu.Unlock()
}

// State returns the current request state
func (o *Orchestrator) State() model.RequestState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Current returns the request in flight, if any
func (o *Orchestrator) Current() (*model.Request, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current, o.current != nil
}

// Busy reports whether a request is in flight
func (o *Orchestrator) Busy() bool {
	return o.State().IsActive()
}

// Cancel requests the in-flight download to abort. It returns false when
// nothing is running.
func (o *Orchestrator) Cancel() bool {
	o.mu.Lock()
	cancel := o.cancel
	o.mu.Unlock()

	if cancel == nil {
		return false
	}
	cancel()
	return true
}

// Submit runs a download request and blocks until it finishes
func (o *Orchestrator) Submit(ctx context.Context, rawURL string) model.Outcome {
	req, rejected, ok := o.begin(ctx, rawURL)
	if !ok {
		return rejected
	}
	return o.run(req)
}

// Start validates the URL and runs the request on its own goroutine. It
// returns ErrInvalidInput or ErrBusy without starting anything; otherwise done
// is called with the outcome once the request finishes.
func (o *Orchestrator) Start(ctx context.Context, rawURL string, done func(model.Outcome)) error {
	req, rejected, ok := o.begin(ctx, rawURL)
	if !ok {
		return rejected.Err
	}

	go func() {
		outcome := o.run(req)
		if done != nil {
			done(outcome)
		}
	}()
	return nil
}

// begin validates the input, then reserves the single request slot and sets
// up the cancellable request context. No status line is emitted and no state
// changes for a rejected request.
func (o *Orchestrator) begin(parent context.Context, rawURL string) (*model.Request, model.Outcome, bool) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return nil, model.Failure("", model.KindInvalidInput, ErrInvalidInput), false
	}

	if !o.inflight.TryAcquire(1) {
		return nil, model.Failure("", model.KindBusy, ErrBusy), false
	}

	opts := o.Options()
	req := model.NewRequest(url)
	req.OutputTemplate = opts.OutputTemplate()
	req.Format = opts.Format

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, opts.Timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}

	o.mu.Lock()
	o.current = req
	o.cancel = cancel
	o.active = &activeRequest{ctx: ctx, opts: opts}
	o.mu.Unlock()

	// Cancel is usable from the first transition on
	o.setState(model.StateValidating)

	return req, model.Outcome{}, true
}

// run executes a request prepared by begin. The slot reserved by begin is
// released before run returns.
func (o *Orchestrator) run(req *model.Request) model.Outcome {
	defer o.inflight.Release(1)

	o.mu.Lock()
	active := o.active
	cancel := o.cancel
	logger := o.logger.With(slog.String("id", req.ShortID()), slog.String("url", req.URL))
	o.mu.Unlock()

	ctx, opts := active.ctx, active.opts

	defer func() {
		cancel()
		o.mu.Lock()
		o.current = nil
		o.cancel = nil
		o.active = nil
		o.mu.Unlock()
	}()

	o.setState(model.StateEnsuringStorage)
	if err := o.mkdir(opts.OutputDir); err != nil {
		logger.Error("failed to create output directory",
			slog.String("dir", opts.OutputDir),
			slog.Any("err", err),
		)
		return o.fail(req, model.KindStorageError, err)
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Warn("download cancelled before start")
		return o.fail(req, model.KindCancelled, context.Canceled)
	}

	o.setState(model.StateDownloading)
	o.relay.Report(LineStarting)

	logger.Info("requesting download",
		slog.String("output", req.OutputTemplate),
		slog.String("format", req.Format),
	)

	sink := newProgressSink(o.relay, logger, o.setState)
	err := o.collab.Download(ctx, Job{
		URL:            req.URL,
		OutputTemplate: req.OutputTemplate,
		Format:         req.Format,
		NoPlaylist:     opts.NoPlaylist,
		OnProgress:     sink.handle,
	})
	sink.close()

	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			logger.Warn("download cancelled", slog.Any("err", err))
			return o.fail(req, model.KindCancelled, context.Canceled)
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("download timed out after %s: %w", opts.Timeout, err)
		}
		logger.Error("download failed", slog.Any("err", err))
		return o.fail(req, model.KindCollaboratorError, err)
	}

	o.relay.Report(LineCompleted)
	logger.Info("download completed", slog.Duration("elapsed", time.Since(req.StartedAt)))

	o.setState(model.StateSucceeded)
	o.setState(model.StateIdle)
	return model.Success(req.ID)
}

// fail emits the single failure line and closes the state machine
func (o *Orchestrator) fail(req *model.Request, kind model.ErrorKind, err error) model.Outcome {
	if kind == model.KindCancelled {
		o.relay.Report(LineCancelled)
	} else {
		o.relay.Report(LineFailed)
	}

	o.setState(model.StateFailed)
	o.setState(model.StateIdle)
	return model.Failure(req.ID, kind, err)
}

// setState records a transition and notifies the observer
func (o *Orchestrator) setState(state model.RequestState) {
	o.mu.Lock()
	if o.state == state {
		o.mu.Unlock()
		return
	}
	o.state = state
	callback := o.onState
	o.mu.Unlock()

	if callback != nil {
		callback(state)
	}
}

// progressSink turns collaborator notifications into status lines. Once
// closed, late notifications are dropped so nothing follows the terminal line.
type progressSink struct {
	mu       sync.Mutex
	closed   bool
	relay    status.Relay
	logger   *slog.Logger
	setState func(model.RequestState)
}

func newProgressSink(relay status.Relay, logger *slog.Logger, setState func(model.RequestState)) *progressSink {
	return &progressSink{
		relay:    relay,
		logger:   logger,
		setState: setState,
	}
}

func (s *progressSink) handle(p model.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	switch p.Status {
	case model.ProgressDownloading:
		s.setState(model.StateDownloading)
		for _, line := range progressLines(p) {
			s.relay.Report(line)
		}
		s.logger.Debug("progress",
			slog.String("percentage", p.PercentOrUnknown()),
			slog.String("speed", p.SpeedOrUnknown()),
			slog.String("eta", p.ETAOrUnknown()),
		)
	case model.ProgressFinished:
		s.setState(model.StateFinalizing)
		s.relay.Report(LineFinalizing)
	default:
		s.logger.Debug("ignoring progress notification", slog.String("status", string(p.Status)))
	}
}

func (s *progressSink) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
