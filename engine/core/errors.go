package core

import (
	"errors"
)

var (
	// ErrCreationFailure is returned when a backend resource could not be
	// allocated: bad parameters, platform limits or shader compile errors.
	ErrCreationFailure = errors.New("resource creation failed")
	// ErrInvalidHandle is returned when an operation references an id the
	// backend never issued or already released.
	ErrInvalidHandle = errors.New("invalid resource handle")
	// ErrBufferSizeMismatch is returned when a caller provided byte span does
	// not match the size the resource or region expects.
	ErrBufferSizeMismatch = errors.New("buffer size mismatch")
	// ErrUnsupportedFormat is returned when audio data cannot be decoded or a
	// texture format is unknown.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrContextUnavailable is returned when no GPU context tier could be negotiated.
	ErrContextUnavailable = errors.New("gpu context unavailable")
)
