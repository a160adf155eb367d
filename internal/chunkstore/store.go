// Package chunkstore publishes files into a directory such that a final
// name either does not exist or refers to complete, synced content.
package chunkstore

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/anjor/casplit/internal/constants"
	"github.com/anjor/casplit/internal/util/stream"
)

type Store struct {
	_       constants.Incomparabe
	dir     string
	bw      *bufio.Writer
	warnOut io.Writer
	written int64
}

// Open binds a Store to an existing directory. Warnings about non-fatal
// conditions (failed write hints, failed cleanups) go to warnOut.
func Open(dir string, warnOut io.Writer) (*Store, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, &os.PathError{Op: "open", Path: dir, Err: errors.New("not a directory")}
	}
	if warnOut == nil {
		warnOut = io.Discard
	}
	return &Store{
		dir:     dir,
		bw:      bufio.NewWriterSize(nil, constants.OutputBufferSize),
		warnOut: warnOut,
	}, nil
}

func (s *Store) Dir() string              { return s.dir }
func (s *Store) Path(name string) string  { return filepath.Join(s.dir, name) }
func (s *Store) BytesWritten() int64      { return s.written }
func (s *Store) Remove(name string) error { return os.Remove(s.Path(name)) }

func (s *Store) Exists(name string) (bool, error) {
	_, err := os.Stat(s.Path(name))
	if err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

type countingWriter struct {
	w io.Writer
	n *int64
}

func (cw countingWriter) Write(p []byte) (n int, err error) {
	n, err = cw.w.Write(p)
	*cw.n += int64(n)
	return
}

// Put writes the content produced by fill under name. The content is staged
// in a sibling temporary file which is flushed, synced and closed before being
// renamed into place. On any failure the temporary file is removed.
func (s *Store) Put(name string, fill func(io.Writer) error) (err error) {

	if s.bw == nil {
		return errors.New("store already released")
	}

	tmpName := name + constants.TempSuffix
	tmpPath := s.Path(tmpName)

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return errors.Wrapf(err, "cannot open %s", tmpName)
	}

	closed, published := false, false
	defer func() {
		if !closed {
			f.Close() //nolint:errcheck
		}
		if !published {
			// don't leave an incomplete chunk around
			if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
				io.WriteString(s.warnOut, "Unable to remove "+tmpName+": "+rmErr.Error()+"\n") //nolint:errcheck
			}
		}
	}()

	s.bw.Reset(countingWriter{w: f, n: &s.written})

	if err = fill(s.bw); err != nil {
		return errors.Wrapf(err, "cannot write to %s", tmpName)
	}
	if err = s.bw.Flush(); err != nil {
		return errors.Wrapf(err, "cannot write to %s", tmpName)
	}
	if err = f.Sync(); err != nil {
		return errors.Wrapf(err, "cannot sync %s", tmpName)
	}

	stream.ApplyWriteOptimizations(f, s.warnOut)

	closed = true
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "cannot write to %s", tmpName)
	}

	if err = os.Rename(tmpPath, s.Path(name)); err != nil {
		return errors.Wrapf(err, "cannot create %s", name)
	}
	published = true

	return nil
}

// Sync makes previously published renames durable.
func (s *Store) Sync() error {
	d, err := os.Open(s.dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}

func (s *Store) Release() {
	s.bw = nil
}
