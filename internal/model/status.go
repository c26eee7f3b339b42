package model

// RequestState represents the lifecycle state of a download request
type RequestState string

const (
	// StateIdle means no request is in flight
	StateIdle RequestState = "Idle"

	// StateValidating means the submitted URL is being checked
	StateValidating RequestState = "Validating"

	// StateEnsuringStorage means the output directory is being created
	StateEnsuringStorage RequestState = "EnsuringStorage"

	// StateDownloading means the collaborator is transferring media
	StateDownloading RequestState = "Downloading"

	// StateFinalizing means the payload is transferred and being written/muxed
	StateFinalizing RequestState = "Finalizing"

	// StateSucceeded means the request finished successfully
	StateSucceeded RequestState = "Succeeded"

	// StateFailed means the request finished with an error
	StateFailed RequestState = "Failed"
)

// String returns the string representation of RequestState
func (s RequestState) String() string {
	return string(s)
}

// IsActive returns true if a request is in flight in this state
func (s RequestState) IsActive() bool {
	return s == StateValidating || s == StateEnsuringStorage || s == StateDownloading || s == StateFinalizing
}

// IsFinished returns true if the state is terminal (succeeded or failed)
func (s RequestState) IsFinished() bool {
	return s == StateSucceeded || s == StateFailed
}
