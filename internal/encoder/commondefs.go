package cspencoder

import (
	"io"
)

// DefaultLevel selects the codec's own default compression level
const DefaultLevel = -1

type Encoder interface {
	// Encode writes the complete encoded form of raw into dst. Every call
	// produces an independently decodable stream.
	Encode(dst io.Writer, raw []byte) error
}

type Initializer func(level int) (instance Encoder, initErr error)

type Decoder func(encoded io.Reader) (io.ReadCloser, error)

type Codec struct {
	// Appended to chunk names, empty for passthrough
	Suffix     string
	NewEncoder Initializer
	NewDecoder Decoder
	Help       string
}
