package passthrough

import (
	"io"

	cspencoder "github.com/anjor/casplit/internal/encoder"
)

var Codec = cspencoder.Codec{
	NewEncoder: NewEncoder,
	NewDecoder: NewDecoder,
	Help:       "Stores chunks as-is",
}

type encoder struct{}

func NewEncoder(int) (cspencoder.Encoder, error) { return encoder{}, nil }

func (encoder) Encode(dst io.Writer, raw []byte) (err error) {
	_, err = dst.Write(raw)
	return
}

func NewDecoder(r io.Reader) (io.ReadCloser, error) { return io.NopCloser(r), nil }
