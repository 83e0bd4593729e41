// Package streamutil reads input streams fully into memory and writes text or
// bytes to output streams.
package streamutil

import (
	"github.com/renproject/streamutil/codec"
	"github.com/renproject/streamutil/stream"
)

const DefaultChunkSize = stream.DefaultChunkSize

var (
	ErrInvalidUTF8 = codec.ErrInvalidUTF8
	ErrNilWriter   = stream.ErrNilWriter
)

type (
	Options = stream.Options
	Reader  = stream.Reader
)

var (
	DefaultOptions = stream.DefaultOptions
	NewReader      = stream.NewReader

	// ReadStream returns the UTF-8 content of an input stream, or nil if there
	// is no stream. The stream is always closed.
	ReadStream = stream.ReadString
	ReadAll    = stream.ReadAll

	WriteString = stream.WriteString
	WriteBytes  = stream.WriteBytes
)
