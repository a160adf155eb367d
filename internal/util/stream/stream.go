package stream

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type Optimization struct {
	Name   string
	Action func(*os.File, os.FileInfo) error
}

// ReadOptimizations and WriteOptimizations are populated by platform-specific
// files. An action returns os.ErrInvalid when it does not apply to the file.
var ReadOptimizations, WriteOptimizations []Optimization

func IsTTY(s interface{}) bool {
	f, isFh := s.(*os.File)
	if !isFh {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ApplyReadOptimizations applies every read hint to f, reporting failures
// other than os.ErrInvalid to errOut.
func ApplyReadOptimizations(f *os.File, errOut io.Writer) {
	apply(f, ReadOptimizations, "read", errOut)
}

func ApplyWriteOptimizations(f *os.File, errOut io.Writer) {
	apply(f, WriteOptimizations, "write", errOut)
}

func apply(f *os.File, opts []Optimization, kind string, errOut io.Writer) {
	if len(opts) == 0 {
		return
	}
	s, err := f.Stat()
	if err != nil {
		io.WriteString(errOut, "Failed to stat() "+f.Name()+": "+err.Error()+"\n") //nolint:errcheck
		return
	}
	for _, opt := range opts {
		if err := opt.Action(f, s); err != nil && err != os.ErrInvalid {
			io.WriteString(errOut, "Failed to apply "+kind+" optimization hint '"+opt.Name+"' to "+f.Name()+": "+err.Error()+"\n") //nolint:errcheck
		}
	}
}
