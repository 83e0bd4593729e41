package codec

import (
	"io"
)

// An Encoder is a function that writes a byte slice to an I/O writer. It
// returns the number of bytes written, and errors that happen.
type Encoder func(w io.Writer, buf []byte) (int, error)

// A Decoder is a function that reads at most one chunk of bytes from an I/O
// reader into a byte slice. It returns the number of bytes read, and errors
// that happen. An io.EOF error marks the end of the stream and may be returned
// alongside a non-zero count.
type Decoder func(r io.Reader, buf []byte) (int, error)
