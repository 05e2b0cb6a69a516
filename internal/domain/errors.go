package domain

import (
	"errors"
	"fmt"
)

var (
	ErrExtraction          = errors.New("cannot read document")
	ErrUnsupportedFormat   = errors.New("unsupported document format")
	ErrEmptyInput          = errors.New("empty input text")
	ErrModelInitialization = errors.New("embedding model initialization failed")
)

// AnalysisError carries the failing operation alongside a sentinel error.
type AnalysisError struct {
	Op     string
	Err    error
	Detail string
}

func (e *AnalysisError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Is supports errors.Is against the wrapped sentinel.
func (e *AnalysisError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewExtractionError reports an unreadable document.
func NewExtractionError(detail string) error {
	return &AnalysisError{Op: "extract", Err: ErrExtraction, Detail: detail}
}

// NewEmptyInputError reports that the named input has no text.
func NewEmptyInputError(which string) error {
	return &AnalysisError{Op: "validate", Err: ErrEmptyInput, Detail: which + " text is empty"}
}

// NewModelInitError reports an embedding model that could not be loaded.
func NewModelInitError(model string, cause error) error {
	return &AnalysisError{Op: "load model", Err: ErrModelInitialization, Detail: fmt.Sprintf("%s: %v", model, cause)}
}
