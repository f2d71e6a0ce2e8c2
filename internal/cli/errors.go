package cli

import "errors"

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrFilterInvalid  = "FILTER_INVALID"
	ErrFieldNotFound  = "FIELD_NOT_FOUND"
	ErrInvalidInput   = "INVALID_INPUT"
	ErrConfigInvalid  = "CONFIG_INVALID"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"
	ErrDocumentFailed = "DOCUMENT_INVALID"
	ErrInternal       = "INTERNAL_ERROR"
)

// errReported is returned after an error has already been written as a JSON
// envelope. It makes the process exit non-zero without printing twice.
var errReported = errors.New("error already reported")
