package truncate

// Clip returns p shortened to n bytes, sharing p's backing array.
// It fails with ErrNegativeLength or a *LengthError exactly as
// Bytes.Truncate does, returning p untouched alongside the error.
func Clip(p []byte, n int64) ([]byte, error) {
	b := Bytes(p)
	if err := b.Truncate(n); err != nil {
		return p, err
	}
	return b, nil
}

// Clamp returns p shortened to at most n bytes. Unlike Clip it never
// fails: lengths beyond the available bytes return p as-is, and
// negative lengths return an empty view.
func Clamp(p []byte, n int64) []byte {
	if n < 0 {
		return p[:0]
	}
	if n < int64(len(p)) {
		return p[:n]
	}
	return p
}

// Reset truncates t to zero length.
func Reset(t Truncatable) error {
	return t.Truncate(0)
}
