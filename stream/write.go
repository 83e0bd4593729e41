package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/renproject/streamutil/codec"
)

// ErrNilWriter is returned when there is no output stream to write to.
var ErrNilWriter = errors.New("nil output stream")

// WriteString writes the UTF-8 bytes of text to w in a single call. The output
// stream is not closed.
func WriteString(w io.Writer, text string) error {
	return WriteBytes(w, codec.EncodeUTF8(text))
}

// WriteBytes writes data to w in a single call. A failed or short write is
// returned as an error and is not retried. The output stream is not closed.
func WriteBytes(w io.Writer, data []byte) error {
	if w == nil {
		return ErrNilWriter
	}
	return writeWith(codec.PlainEncoder, w, data)
}

func writeWith(enc codec.Encoder, w io.Writer, data []byte) error {
	if _, err := enc(w, data); err != nil {
		return fmt.Errorf("writing output stream: %w", err)
	}
	return nil
}
