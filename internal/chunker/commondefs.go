package cspchunker

import (
	"io"

	"github.com/anjor/casplit/internal/constants"
)

// Source hands out consecutive windows of an input stream.
type Source interface {
	// Fill places up to len(buf) bytes into buf, copying every span to tee
	// as soon as it is read.
	Fill(buf []byte, tee io.Writer) (int, error)
	// Exhausted reports whether the underlying stream reached its end.
	Exhausted() bool
	// Offset is the amount of bytes consumed so far.
	Offset() int64
	ReadCalls() int64
}

// Chunk is one window of the stream together with its position and the
// digest of its content.
type Chunk struct {
	_       constants.Incomparabe
	Ordinal uint64
	Raw     []byte
	Digest  []byte
}

func (c *Chunk) Size() int { return len(c.Raw) }
