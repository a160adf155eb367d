package lz4

import (
	"io"

	plz4 "github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"

	cspencoder "github.com/anjor/casplit/internal/encoder"
)

var Codec = cspencoder.Codec{
	Suffix:     ".lz4",
	NewEncoder: NewEncoder,
	NewDecoder: NewDecoder,
	Help:       "lz4 frames, level 0 is the fast mode",
}

var levels = [...]plz4.CompressionLevel{
	plz4.Fast,
	plz4.Level1,
	plz4.Level2,
	plz4.Level3,
	plz4.Level4,
	plz4.Level5,
	plz4.Level6,
	plz4.Level7,
	plz4.Level8,
	plz4.Level9,
}

type encoder struct {
	zw   *plz4.Writer
	opts []plz4.Option
}

func NewEncoder(level int) (cspencoder.Encoder, error) {
	if level < cspencoder.DefaultLevel || level >= len(levels) {
		return nil, errors.Errorf("lz4 compression level %d out of range [0:9]", level)
	}

	e := &encoder{
		zw:   plz4.NewWriter(io.Discard),
		opts: []plz4.Option{plz4.ConcurrencyOption(1)},
	}
	if level >= 0 {
		e.opts = append(e.opts, plz4.CompressionLevelOption(levels[level]))
	}
	if err := e.zw.Apply(e.opts...); err != nil {
		return nil, errors.Wrap(err, "lz4 writer initialization failed")
	}
	return e, nil
}

func (e *encoder) Encode(dst io.Writer, raw []byte) error {
	e.zw.Reset(dst)
	if err := e.zw.Apply(e.opts...); err != nil {
		return errors.Wrap(err, "lz4 writer initialization failed")
	}
	if _, err := e.zw.Write(raw); err != nil {
		return errors.Wrap(err, "lz4 compression failed")
	}
	return errors.Wrap(e.zw.Close(), "lz4 finalization failed")
}

func NewDecoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(plz4.NewReader(r)), nil
}
