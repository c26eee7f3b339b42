package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request is a single download request. It lives for one invocation only.
type Request struct {
	ID             string
	URL            string
	OutputTemplate string // e.g. "Downloads/%(title)s.%(ext)s"
	Format         string // yt-dlp format selector
	StartedAt      time.Time
}

// NewRequest creates a request for the given URL with a fresh ID
func NewRequest(url string) *Request {
	return &Request{
		ID:        uuid.NewString(),
		URL:       url,
		StartedAt: time.Now(),
	}
}

// ShortID returns the first block of the request ID, for log lines
func (r *Request) ShortID() string {
	return strings.Split(r.ID, "-")[0]
}

// ErrorKind classifies a failed request
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindInvalidInput      ErrorKind = "InvalidInput"
	KindStorageError      ErrorKind = "StorageError"
	KindCollaboratorError ErrorKind = "CollaboratorError"
	KindBusy              ErrorKind = "Busy"
	KindCancelled         ErrorKind = "Cancelled"
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	if k == KindNone {
		return "None"
	}
	return string(k)
}

// Outcome is the terminal result of a request: success, or failure with a
// kind and the underlying error message meant for the alert dialog.
type Outcome struct {
	RequestID string
	Kind      ErrorKind
	Message   string
	Err       error
}

// Success returns a successful outcome
func Success(requestID string) Outcome {
	return Outcome{RequestID: requestID}
}

// Failure returns a failed outcome of the given kind. Message keeps the
// error text verbatim.
func Failure(requestID string, kind ErrorKind, err error) Outcome {
	o := Outcome{RequestID: requestID, Kind: kind, Err: err}
	if err != nil {
		o.Message = err.Error()
	}
	return o
}

// Succeeded reports whether the outcome is a success
func (o Outcome) Succeeded() bool {
	return o.Kind == KindNone
}

// Error implements error for failed outcomes so callers can return them directly
func (o Outcome) Error() string {
	if o.Succeeded() {
		return ""
	}
	if o.Message == "" {
		return o.Kind.String()
	}
	return o.Kind.String() + ": " + o.Message
}

// Unwrap returns the underlying error
func (o Outcome) Unwrap() error {
	return o.Err
}
