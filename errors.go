package truncate

import (
	"errors"
	"fmt"
)

// Sentinel errors for truncation.
var (
	// ErrLengthExceeded indicates the requested length is greater than
	// the resource's current length.
	ErrLengthExceeded = errors.New("new length exceeds current length")

	// ErrNegativeLength indicates the requested length is negative.
	ErrNegativeLength = errors.New("negative length")
)

// LengthError reports a request to truncate a resource to more bytes
// than it currently holds.
type LengthError struct {
	Requested int64 // Length asked for.
	Current   int64 // Length the resource had.
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("truncate to %d exceeds current length %d", e.Requested, e.Current)
}

// Unwrap returns ErrLengthExceeded for errors.Is support.
func (e *LengthError) Unwrap() error {
	return ErrLengthExceeded
}

// IsLengthExceeded checks if an error was caused by requesting more
// bytes than the resource holds.
func IsLengthExceeded(err error) bool {
	return errors.Is(err, ErrLengthExceeded)
}
