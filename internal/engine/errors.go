package engine

import "errors"

var (
	// ErrValidation indicates invalid run configuration.
	ErrValidation = errors.New("validation failed")

	// ErrAborted indicates the user declined the confirmation prompt.
	ErrAborted = errors.New("aborted by user")

	// ErrLocked indicates another organize run holds the source lock.
	ErrLocked = errors.New("another organize run is in progress")

	// ErrFailFast indicates a per-file error aborted the run. Completed
	// moves are preserved.
	ErrFailFast = errors.New("aborted on first error")
)

// FailureKind classifies a per-file failure.
type FailureKind int

const (
	// FailureNone means the file did not fail.
	FailureNone FailureKind = iota

	// FailureDateRead means file metadata could not be read.
	FailureDateRead

	// FailureBoundary means a resolved real path escaped its root.
	FailureBoundary

	// FailureMove means the relocation itself failed.
	FailureMove
)

// String returns the failure kind name.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureDateRead:
		return "date-read"
	case FailureBoundary:
		return "boundary"
	case FailureMove:
		return "move"
	default:
		return "unknown"
	}
}
