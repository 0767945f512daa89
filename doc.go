// Package truncate shortens byte resources in place.
//
// The package defines a single capability: Truncatable, the interface
// for resources that can be cut down to a given length. Truncation
// keeps the leading bytes untouched, discards the rest, and never
// extends or reorders. A resource that cannot honor the requested
// length reports the failure and stays exactly as it was.
//
// # Implementations
//
// Three implementations ship with the package:
//
//   - Bytes: a byte slice, re-sliced in place without copying
//   - File: an *os.File, delegating to the platform's resize call
//   - Cursor: any Truncatable plus a tracked position
//
// # Basic Usage
//
// Shorten a slice through the capability:
//
//	b := truncate.Bytes{0, 1, 2, 3}
//	if err := b.Truncate(3); err != nil {
//		// ...
//	}
//	// b is now [0 1 2]
//
// Asking for more bytes than a resource holds fails without touching it:
//
//	err := b.Truncate(8)
//	if truncate.IsLengthExceeded(err) {
//		// b still holds [0 1 2]
//	}
//
// # Convenience Functions
//
// For one-off slice work:
//
//	head, err := truncate.Clip(p, 100) // checked shortened view of p
//	head := truncate.Clamp(p, 100)     // capped at the available bytes
//	err := truncate.Reset(t)           // truncate to zero length
//
// # Concurrency
//
// Calls are synchronous and add no locking of their own. The caller
// holds exclusive access to the resource for the duration of the call;
// thread safety is whatever the wrapped resource provides.
package truncate
