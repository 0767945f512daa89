package truncate

// Truncatable is the interface for byte resources that can be
// shortened in place.
type Truncatable interface {
	// Truncate shortens the resource to n bytes. The first n bytes keep
	// their prior values and order; trailing bytes are discarded. A
	// successful call never extends the resource. On failure the
	// resource is left completely unmodified.
	//
	// The caller must hold exclusive access to the resource for the
	// duration of the call.
	Truncate(n int64) error
}
