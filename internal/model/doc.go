package model

// Package model defines the data passed between the orchestrator, the download
// collaborator and the frontends: requests, outcomes, progress notifications
// and the per-request state machine.
