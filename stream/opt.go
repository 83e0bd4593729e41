package stream

import (
	"github.com/renproject/streamutil/codec"
	"github.com/sirupsen/logrus"
)

// DefaultChunkSize is the number of bytes requested from the input stream per
// read.
const DefaultChunkSize = 1024

// Options are used to parameterise the behaviour of a Reader.
type Options struct {
	Logger     logrus.FieldLogger
	Decoder    codec.Decoder // Reads one chunk. Defaults to codec.PlainDecoder.
	ChunkSize  int           // Bytes requested per read. Defaults to 1024.
	StrictUTF8 bool          // Fail on invalid UTF-8 instead of replacing it. Defaults to false.
}

func DefaultOptions() Options {
	return Options{
		Logger: logrus.New().
			WithField("lib", "streamutil").
			WithField("pkg", "stream").
			WithField("com", "reader"),
		Decoder:   codec.PlainDecoder,
		ChunkSize: DefaultChunkSize,
	}
}

func (opts Options) WithLogger(logger logrus.FieldLogger) Options {
	opts.Logger = logger
	return opts
}

func (opts Options) WithDecoder(dec codec.Decoder) Options {
	opts.Decoder = dec
	return opts
}

func (opts Options) WithChunkSize(chunkSize int) Options {
	opts.ChunkSize = chunkSize
	return opts
}

func (opts Options) WithStrictUTF8(strict bool) Options {
	opts.StrictUTF8 = strict
	return opts
}

func (opts *Options) setZerosToDefaults() {
	if opts.Logger == nil {
		opts.Logger = DefaultOptions().Logger
	}
	if opts.Decoder == nil {
		opts.Decoder = codec.PlainDecoder
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
}
