package xlsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the workbook file could not be read as xlsx.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidIndex indicates a row or column index below 1.
var ErrInvalidIndex = errors.New("row and column indices are 1-based")

// ErrInvalidMode indicates an unknown open mode.
var ErrInvalidMode = errors.New("invalid open mode")

// OpenError represents a failure to load or create a workbook.
type OpenError struct {
	Path string
	Mode Mode
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s (%s): %v", e.Path, e.Mode, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// NewOpenError creates a new OpenError.
func NewOpenError(path string, mode Mode, err error) *OpenError {
	return &OpenError{
		Path: path,
		Mode: mode,
		Err:  err,
	}
}

// SaveError represents a failure to write the workbook to disk.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// NewSaveError creates a new SaveError.
func NewSaveError(path string, err error) *SaveError {
	return &SaveError{
		Path: path,
		Err:  err,
	}
}
