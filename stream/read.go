package stream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/renproject/streamutil/codec"
)

// A Reader drains input streams into memory. It holds no per-call state and
// is safe for concurrent use.
type Reader struct {
	opts Options
}

// NewReader returns a Reader. Zero-valued options are replaced by their
// defaults.
func NewReader(opts Options) *Reader {
	opts.setZerosToDefaults()
	return &Reader{opts: opts}
}

var defaultReader = NewReader(DefaultOptions())

// ReadString reads r until EOF and decodes the bytes as UTF-8 using the
// default options. See Reader.ReadString.
func ReadString(r io.ReadCloser) (*string, error) {
	return defaultReader.ReadString(r)
}

// ReadAll reads r until EOF using the default options. See Reader.ReadAll.
func ReadAll(r io.ReadCloser) ([]byte, error) {
	return defaultReader.ReadAll(r)
}

// ReadString reads r until EOF and returns its content decoded as UTF-8. A nil
// reader has no content, and nil is returned without an error. Only a nil
// interface counts as no reader; a typed nil pointer is read and closed like
// any other value. The reader is
// always closed before returning, and errors from closing it are ignored.
func (reader *Reader) ReadString(r io.ReadCloser) (*string, error) {
	if r == nil {
		return nil, nil
	}
	buf, err := reader.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !reader.opts.StrictUTF8 {
		text := codec.DecodeUTF8(buf)
		return &text, nil
	}
	text, err := codec.DecodeUTF8Strict(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding input stream: %w", err)
	}
	return &text, nil
}

// ReadAll reads r until EOF and returns everything it read. A nil reader
// returns a nil slice without an error. As with ReadString, a typed nil
// pointer is not a nil reader. The reader is always closed before
// returning, and errors from closing it are ignored.
func (reader *Reader) ReadAll(r io.ReadCloser) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	defer func() {
		if err := r.Close(); err != nil {
			reader.opts.Logger.Debugf("closing input stream: %v", err)
		}
	}()

	out := new(bytes.Buffer)
	out.Grow(reader.opts.ChunkSize)
	chunk := make([]byte, reader.opts.ChunkSize)
	for {
		n, err := reader.opts.Decoder(r, chunk)
		out.Write(chunk[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input stream: %w", err)
		}
	}
	reader.opts.Logger.Debugf("read %d bytes from input stream", out.Len())
	return out.Bytes(), nil
}
