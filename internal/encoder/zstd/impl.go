package zstd

import (
	"io"

	kzstd "github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	cspencoder "github.com/anjor/casplit/internal/encoder"
)

var Codec = cspencoder.Codec{
	Suffix:     ".zst",
	NewEncoder: NewEncoder,
	NewDecoder: NewDecoder,
	Help:       "zstandard frames, levels map onto fastest/default/better/best",
}

type encoder struct {
	zw *kzstd.Encoder
}

func NewEncoder(level int) (cspencoder.Encoder, error) {
	if level < cspencoder.DefaultLevel || level > 9 {
		return nil, errors.Errorf("zstd compression level %d out of range [0:9]", level)
	}

	speed := kzstd.SpeedDefault
	if level == 0 {
		speed = kzstd.SpeedFastest
	} else if level > 0 {
		// 1..9 spread over the zstd 1..22 scale
		speed = kzstd.EncoderLevelFromZstd(level * 22 / 9)
	}

	zw, err := kzstd.NewWriter(nil,
		kzstd.WithEncoderLevel(speed),
		kzstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, errors.Wrap(err, "zstd writer initialization failed")
	}
	return &encoder{zw: zw}, nil
}

func (e *encoder) Encode(dst io.Writer, raw []byte) error {
	e.zw.Reset(dst)
	if _, err := e.zw.Write(raw); err != nil {
		return errors.Wrap(err, "zstd compression failed")
	}
	return errors.Wrap(e.zw.Close(), "zstd finalization failed")
}

func NewDecoder(r io.Reader) (io.ReadCloser, error) {
	zr, err := kzstd.NewReader(r, kzstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return zr.IOReadCloser(), nil
}
