package truncate

// Bytes adapts a byte slice to the Truncatable interface. Truncation
// re-slices the same backing array; no bytes are copied and no new
// storage is allocated.
type Bytes []byte

// Truncate shortens the slice to n bytes.
//
// Returns ErrNegativeLength if n is negative and a *LengthError if n
// exceeds the current length. The slice is unchanged in both cases.
func (b *Bytes) Truncate(n int64) error {
	switch {
	case n < 0:
		return ErrNegativeLength
	case n > int64(len(*b)):
		return &LengthError{Requested: n, Current: int64(len(*b))}
	}
	*b = (*b)[:n]
	return nil
}

// Len returns the current length in bytes.
func (b Bytes) Len() int64 {
	return int64(len(b))
}
