package truncate

import "os"

// File adapts an *os.File to the Truncatable interface by delegating
// to the platform's file-resizing call.
type File struct {
	f *os.File
}

// NewFile wraps an open file. The file remains owned by the caller;
// closing it stays the caller's job.
func NewFile(f *os.File) *File {
	return &File{f: f}
}

// Truncate changes the size of the file to n bytes via
// (*os.File).Truncate.
//
// The file offset is left where it was; a later write at an offset
// past the new end re-extends the file. The current size is not known
// here without a separate stat, so lengths beyond it are handed to the
// platform unchecked — on most platforms they extend the file rather
// than fail with ErrLengthExceeded. Platform errors are returned
// as-is.
func (f *File) Truncate(n int64) error {
	if n < 0 {
		return ErrNegativeLength
	}
	return f.f.Truncate(n)
}
