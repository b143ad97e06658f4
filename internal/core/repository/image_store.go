package repository

import (
	"errors"
	"io"
)

var (
	ErrFileTooLarge       = errors.New("file exceeds the maximum upload size")
	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
)

// ImageStore persists uploaded profile images under sanitized filenames.
type ImageStore interface {
	// Save writes the upload and returns the reference path to store on the
	// user row (relative to the serving root, e.g. "uploads/<name>").
	Save(filename string, r io.Reader, size int64) (string, error)
}
