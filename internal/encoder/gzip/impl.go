package gzip

import (
	"io"

	kgzip "github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	cspencoder "github.com/anjor/casplit/internal/encoder"
)

var Codec = cspencoder.Codec{
	Suffix:     ".gz",
	NewEncoder: NewEncoder,
	NewDecoder: NewDecoder,
	Help:       "gzip container, levels 0 (store) to 9 (best)",
}

type encoder struct {
	zw *kgzip.Writer
}

func NewEncoder(level int) (cspencoder.Encoder, error) {
	if level < cspencoder.DefaultLevel || level > kgzip.BestCompression {
		return nil, errors.Errorf("gzip compression level %d out of range [0:9]", level)
	}

	zw, err := kgzip.NewWriterLevel(io.Discard, level)
	if err != nil {
		return nil, errors.Wrap(err, "gzip writer initialization failed")
	}
	return &encoder{zw: zw}, nil
}

func (e *encoder) Encode(dst io.Writer, raw []byte) error {
	e.zw.Reset(dst)
	if _, err := e.zw.Write(raw); err != nil {
		return errors.Wrap(err, "gzip compression failed")
	}
	return errors.Wrap(e.zw.Close(), "gzip finalization failed")
}

func NewDecoder(r io.Reader) (io.ReadCloser, error) {
	zr, err := kgzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	// exactly one member per chunk
	zr.Multistream(false)
	return zr, nil
}
