package truncate

// Cursor couples a Truncatable resource with a position, for callers
// that track a read or write offset alongside the bytes.
type Cursor struct {
	inner Truncatable
	pos   int64
}

// NewCursor wraps a resource with a position of zero.
func NewCursor(inner Truncatable) *Cursor {
	return &Cursor{inner: inner}
}

// Truncate delegates to the wrapped resource. On success a position
// that lies in the discarded region is clamped to the new length; it
// is never reset to zero. On failure the position is unchanged.
func (c *Cursor) Truncate(n int64) error {
	if err := c.inner.Truncate(n); err != nil {
		return err
	}
	if c.pos > n {
		c.pos = n
	}
	return nil
}

// Position returns the current position.
func (c *Cursor) Position() int64 {
	return c.pos
}

// SetPosition moves the position. Positions past the end of the data
// are allowed; what they mean is up to the wrapped resource.
func (c *Cursor) SetPosition(pos int64) {
	c.pos = pos
}
