package memory

import "errors"

var (
	// ErrDocumentMissing means a memory document has not been initialized on disk
	ErrDocumentMissing = errors.New("memory document not found (run `mnemos init` first)")
	// ErrInvalidSection means a section name is outside the configured set
	ErrInvalidSection = errors.New("invalid section")
	// ErrSectionNotFound means a valid section name has no heading in the document
	ErrSectionNotFound = errors.New("section not found")
	// ErrInvalidMode means an update mode other than replace or append
	ErrInvalidMode = errors.New("invalid update mode")
	// ErrInvalidKind means a memory kind other than all, long or short
	ErrInvalidKind = errors.New("invalid memory type")
)
