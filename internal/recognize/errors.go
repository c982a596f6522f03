package recognize

import (
	"errors"
	"fmt"
)

// Pipeline failures are typed so the command layer can show the right
// message. None are retried; each is terminal for a single attempt.
var (
	// ErrImageTooLarge means normalization could not bring the photo under
	// the upload budget. Raised before any network call.
	ErrImageTooLarge = errors.New("image too large to upload")

	// ErrUnreadableImage means the input file could not be decoded as an
	// image at all.
	ErrUnreadableImage = errors.New("unreadable image")
)

// TransportError wraps a network-level failure talking to the recognition
// service.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("recognition service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError means the service answered but the response carried no usable
// candidate.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unusable recognition response: %s", e.Reason)
}
