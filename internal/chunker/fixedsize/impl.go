package fixedsize

import (
	"io"

	"github.com/pkg/errors"

	cspchunker "github.com/anjor/casplit/internal/chunker"
)

var _ cspchunker.Source = (*Reader)(nil)

type Reader struct {
	src       io.Reader
	exhausted bool
	offset    int64
	readCalls int64
}

func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

func (r *Reader) Exhausted() bool  { return r.exhausted }
func (r *Reader) Offset() int64    { return r.offset }
func (r *Reader) ReadCalls() int64 { return r.readCalls }

func (r *Reader) Fill(buf []byte, tee io.Writer) (n int, err error) {

	for n < len(buf) && !r.exhausted {

		var got int
		got, err = r.src.Read(buf[n:])
		r.readCalls++

		if got > 0 {
			if tee != nil {
				if _, teeErr := tee.Write(buf[n : n+got]); teeErr != nil {
					return n, teeErr
				}
			}
			n += got
			r.offset += int64(got)
		}

		if err == io.EOF {
			r.exhausted = true
			err = nil
		} else if err != nil {
			return n, errors.Wrapf(err, "read failed at byte offset %d", r.offset)
		}
	}

	return n, nil
}
