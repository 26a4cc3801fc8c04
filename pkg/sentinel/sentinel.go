package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Clients and stores return these
// (optionally wrapped) so engines can translate them into domain behavior.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: record does not exist in the downstream system
// - ErrInvalidState: resource in wrong state for the requested operation
// - ErrUnavailable: downstream system temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
