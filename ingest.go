package casplit

import (
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	cspchunker "github.com/anjor/casplit/internal/chunker"
	"github.com/anjor/casplit/internal/chunker/fixedsize"
	"github.com/anjor/casplit/internal/chunkname"
	"github.com/anjor/casplit/internal/chunkstore"
	"github.com/anjor/casplit/internal/constants"
	"github.com/anjor/casplit/internal/reconciler"
	"github.com/anjor/casplit/internal/util/stream"
	"github.com/anjor/casplit/internal/util/text"
)

var preProcessTasks, postProcessTasks func(spl *Splitter)

// Run opens the configured input and output directory and splits the
// former into the latter.
func (spl *Splitter) Run() error {

	in, err := spl.openInput()
	if err != nil {
		return err
	}
	if in != os.Stdin {
		defer in.Close()
	}

	return spl.ProcessReader(in)
}

func (spl *Splitter) openInput() (*os.File, error) {

	cfg := &spl.cfg

	if cfg.inputPath == InputStdin {
		if stream.IsTTY(os.Stdin) {
			fmt.Fprint(
				spl.stderr,
				"------\nYou seem to be feeding data straight from a terminal, an odd choice...\nNevertheless will proceed to read until EOF ( Ctrl+D )\n------\n",
			)
		}
		return os.Stdin, nil
	}

	in, err := os.Open(cfg.inputPath)
	if err != nil {
		return nil, &ExitError{Status: constants.ExitNoInput, Err: err}
	}

	if st, err := in.Stat(); err == nil && st.Mode().IsRegular() {
		// overflow is certain: refuse before writing anything
		if chunks := (st.Size() + int64(cfg.chunkSize) - 1) / int64(cfg.chunkSize); chunks > constants.MaxChunkCount {
			in.Close()
			return nil, exitErrorf(constants.ExitUsage, chunkname.ErrTooManyChunks,
				"%s: %s bytes would need %s chunks of %s bytes",
				cfg.inputPath,
				text.Commify64(st.Size()),
				text.Commify64(chunks),
				text.Commify(cfg.chunkSize),
			)
		}
		stream.ApplyReadOptimizations(in, spl.stderr)
	}

	return in, nil
}

func (spl *Splitter) openStore() (err error) {
	if spl.store != nil {
		return nil
	}
	if spl.store, err = chunkstore.Open(spl.cfg.outputDir, spl.stderr); err != nil {
		return &ExitError{Status: constants.ExitCantCreat, Err: err}
	}
	return nil
}

// ProcessReader splits everything readable from inputReader into the output
// directory, then removes stale files if that was requested. On error the
// chunks already published stay in place, and no partially written chunk is
// ever visible under a final name.
func (spl *Splitter) ProcessReader(inputReader io.Reader) (err error) {

	var t0 time.Time
	var src cspchunker.Source = fixedsize.NewReader(inputReader)

	defer func() {
		s := &spl.statSummary
		s.BytesRead = src.Offset()
		s.SysStats.ReadCalls = src.ReadCalls()
		if spl.store != nil {
			s.BytesWritten = spl.store.BytesWritten()
		}
		if postProcessTasks != nil {
			postProcessTasks(spl)
		}
		s.SysStats.ElapsedNsecs = time.Since(t0).Nanoseconds()
	}()

	if preProcessTasks != nil {
		preProcessTasks(spl)
	}
	t0 = time.Now()

	if err = spl.openStore(); err != nil {
		return
	}

	if spl.inBuf == nil {
		if spl.cfg.chunkSize > constants.MaxChunkSize {
			return exitErrorf(constants.ExitOSErr, syscall.ENOMEM,
				"a chunk of %s exceeds the %s buffer limit",
				text.Sizes(int64(spl.cfg.chunkSize)),
				text.Sizes(constants.MaxChunkSize),
			)
		}
		spl.inBuf = make([]byte, spl.cfg.chunkSize)
	}

	for ordinal := uint64(0); ; ordinal++ {

		spl.hasher.Reset()

		var n int
		if n, err = src.Fill(spl.inBuf, spl.hasher); err != nil {
			return exitErrorf(constants.ExitIOErr, err, "%s", spl.cfg.inputPath)
		}

		// nothing left: no zero-length chunk is ever emitted
		if n == 0 {
			break
		}

		chunk := cspchunker.Chunk{
			Ordinal: ordinal,
			Raw:     spl.inBuf[:n],
			Digest:  spl.hasher.Sum(spl.digest[:0]),
		}

		var name string
		if name, err = chunkname.Format(chunk.Ordinal, chunk.Digest, spl.suffix); err != nil {
			return &ExitError{Status: constants.ExitUsage, Err: err}
		}

		if err = spl.materialize(name, &chunk); err != nil {
			return
		}

		spl.collector.AppendName(name)
		spl.statSummary.Chunks++
		spl.statSummary.TailChunkSize = int64(chunk.Size())

		if src.Exhausted() {
			break
		}
	}

	if syncErr := spl.store.Sync(); syncErr != nil {
		fmt.Fprintf(spl.stderr, "Unable to sync %s: %s\n", spl.store.Dir(), syncErr)
	}

	if spl.cfg.DeleteStale {
		err = spl.reconcile()
	}

	return
}

func (spl *Splitter) materialize(name string, c *cspchunker.Chunk) error {

	if spl.cfg.SkipExisting {
		exists, err := spl.store.Exists(name)
		if err != nil {
			return exitErrorf(constants.ExitCantCreat, err, "cannot check %s", name)
		}
		if exists {
			spl.statSummary.Skipped++
			if spl.cfg.Verbose {
				fmt.Fprintf(spl.stdout, "Skipping '%s'\n", name)
			}
			return nil
		}
	}

	if err := spl.store.Put(name, func(w io.Writer) error {
		return spl.encoder.Encode(w, c.Raw)
	}); err != nil {
		return &ExitError{Status: constants.ExitCantCreat, Err: err}
	}

	spl.statSummary.Created++
	if spl.cfg.Verbose {
		fmt.Fprintf(spl.stdout, "Created '%s'\n", name)
	}
	return nil
}

func (spl *Splitter) reconcile() error {

	live, err := reconciler.ListRegular(spl.store.Dir())
	if err != nil {
		return exitErrorf(constants.ExitCantCreat, err, "%s", spl.store.Dir())
	}

	spl.statSummary.Removed += int64(reconciler.Reconcile(
		spl.collector.Names(),
		live,
		spl.store.Remove,
		reconcileReporter{spl},
	))

	return nil
}

type reconcileReporter struct{ *Splitter }

func (rr reconcileReporter) Removed(name string) {
	if rr.cfg.Verbose {
		fmt.Fprintf(rr.stdout, "Removing '%s'\n", name)
	}
}

func (rr reconcileReporter) RemoveFailed(name string, err error) {
	fmt.Fprintf(rr.stderr, "Unable to remove %s: %s\n", name, err)
}
