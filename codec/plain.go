package codec

import (
	"io"
)

// PlainEncoder writes data directly to the IO writer without modification. The
// entire buffer is handed to the writer in a single call. A writer that accepts
// fewer bytes without reporting an error results in io.ErrShortWrite.
func PlainEncoder(w io.Writer, buf []byte) (int, error) {
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	return n, err
}

// PlainDecoder reads one chunk from the IO reader without modification. Unlike
// io.ReadFull, it does not try to fill the buffer, so it can be called in a
// loop until io.EOF is returned.
func PlainDecoder(r io.Reader, buf []byte) (int, error) {
	return r.Read(buf)
}
