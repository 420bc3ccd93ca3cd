package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrTemporary        = errors.New("temporary failure")

	// ErrUnsupportedFormat means the file extension has no extraction
	// strategy. Never retried.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrExtraction marks an I/O failure in the extraction stage (OCR
	// backend, corrupt payload). Retry policy belongs to the caller.
	ErrExtraction = errors.New("extraction failure")

	ErrAnalysisFailed = errors.New("analysis failed")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// UnsupportedFormatError carries the rejected extension so callers can
// report it. Matches ErrUnsupportedFormat under errors.Is.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return "unsupported file type: file has no extension"
	}
	return fmt.Sprintf("unsupported file type: %s", e.Extension)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
