package xz

import (
	"io"

	"github.com/pkg/errors"
	uxz "github.com/ulikunitz/xz"

	cspencoder "github.com/anjor/casplit/internal/encoder"
)

var Codec = cspencoder.Codec{
	Suffix:     ".xz",
	NewEncoder: NewEncoder,
	NewDecoder: NewDecoder,
	Help:       "xz container, level selects a dictionary of 64KiB<<level",
}

type encoder struct {
	cfg uxz.WriterConfig
}

func NewEncoder(level int) (cspencoder.Encoder, error) {
	if level < cspencoder.DefaultLevel || level > 9 {
		return nil, errors.Errorf("xz compression level %d out of range [0:9]", level)
	}

	e := &encoder{}
	if level >= 0 {
		e.cfg.DictCap = (64 * 1024) << uint(level)
	}
	return e, nil
}

func (e *encoder) Encode(dst io.Writer, raw []byte) error {
	zw, err := e.cfg.NewWriter(dst)
	if err != nil {
		return errors.Wrap(err, "xz writer initialization failed")
	}
	if _, err := zw.Write(raw); err != nil {
		return errors.Wrap(err, "xz compression failed")
	}
	return errors.Wrap(zw.Close(), "xz finalization failed")
}

func NewDecoder(r io.Reader) (io.ReadCloser, error) {
	zr, err := uxz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(zr), nil
}
