package types

import "errors"

// Domain errors shared across pipeline stages.
var (
	// ErrUnsupportedFormat signals a file whose extension has no extractor.
	// The walkers skip these silently.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrInsufficientText signals an extraction that produced too little text
	// to be usable, typically a scanned PDF that needs OCR. Logged to the
	// issues report, never fatal.
	ErrInsufficientText = errors.New("insufficient text content")

	// ErrInvalidExercise signals a record that fails structural validation.
	ErrInvalidExercise = errors.New("invalid exercise record")

	// ErrNotFound signals a missing catalog or index entity.
	ErrNotFound = errors.New("not found")
)
