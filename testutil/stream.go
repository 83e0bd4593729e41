package testutil

import (
	"bytes"
	"io"
)

// ReadCloser wraps a reader and records how many times it was closed. If
// CloseErr is set, every call to Close returns it.
type ReadCloser struct {
	io.Reader
	CloseErr error
	Closes   int
}

func NewReadCloser(r io.Reader) *ReadCloser {
	return &ReadCloser{Reader: r}
}

func (rc *ReadCloser) Close() error {
	rc.Closes++
	return rc.CloseErr
}

// FailingReader returns Data, in as many reads as it takes, and then Err on
// every read after that.
type FailingReader struct {
	Data []byte
	Err  error
}

func (r *FailingReader) Read(p []byte) (int, error) {
	if len(r.Data) == 0 {
		return 0, r.Err
	}
	n := copy(p, r.Data)
	r.Data = r.Data[n:]
	return n, nil
}

// FailingWriter rejects every write with Err.
type FailingWriter struct {
	Err   error
	Calls int
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	w.Calls++
	return 0, w.Err
}

// ShortWriter accepts at most Limit bytes per call and never reports an
// error.
type ShortWriter struct {
	Limit int
	buf   bytes.Buffer
}

func (w *ShortWriter) Write(p []byte) (int, error) {
	if len(p) > w.Limit {
		p = p[:w.Limit]
	}
	return w.buf.Write(p)
}

func (w *ShortWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Sink records every write it receives, and whether anyone tried to close it.
type Sink struct {
	bytes.Buffer
	Writes int
	Closed bool
}

func (s *Sink) Write(p []byte) (int, error) {
	s.Writes++
	return s.Buffer.Write(p)
}

func (s *Sink) Close() error {
	s.Closed = true
	return nil
}

// RecordingReader wraps a reader and records the length of the buffer passed
// to each Read call.
type RecordingReader struct {
	io.Reader
	Requests []int
}

func (r *RecordingReader) Read(p []byte) (int, error) {
	r.Requests = append(r.Requests, len(p))
	return r.Reader.Read(p)
}
