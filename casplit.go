package casplit

import (
	"hash"
	"io"

	"github.com/anjor/casplit/internal/chunkstore"
	cspcollector "github.com/anjor/casplit/internal/collector"
	"github.com/anjor/casplit/internal/collector/list"
	"github.com/anjor/casplit/internal/collector/noop"
	"github.com/anjor/casplit/internal/constants"
	cspencoder "github.com/anjor/casplit/internal/encoder"
	"github.com/anjor/casplit/internal/encoder/gzip"
	"github.com/anjor/casplit/internal/encoder/lz4"
	"github.com/anjor/casplit/internal/encoder/passthrough"
	"github.com/anjor/casplit/internal/encoder/xz"
	"github.com/anjor/casplit/internal/encoder/zstd"
	"github.com/anjor/casplit/internal/hasher"
)

var availableCompressors = map[string]cspencoder.Codec{
	"none": passthrough.Codec,
	"gzip": gzip.Codec,
	"zstd": zstd.Codec,
	"xz":   xz.Codec,
	"lz4":  lz4.Codec,
}

// what -z turns on when no --compressor is given
const defaultCompressor = "gzip"

var availableCollectors = map[bool]cspcollector.Initializer{
	false: noop.NewCollector,
	true:  list.NewCollector,
}

type Splitter struct {
	_ constants.Incomparabe

	cfg         config
	statSummary statSummary

	hasher    hash.Hash
	digest    [hasher.DigestSize]byte
	encoder   cspencoder.Encoder
	suffix    string
	collector cspcollector.Collector
	store     *chunkstore.Store
	inBuf     []byte

	stdout io.Writer
	stderr io.Writer
}

func newSplitter(stdout, stderr io.Writer) *Splitter {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &Splitter{
		cfg:    defaultConfig(),
		stdout: stdout,
		stderr: stderr,
	}
}

func (spl *Splitter) Destroy() {
	spl.inBuf = nil
	if spl.store != nil {
		spl.store.Release()
		spl.store = nil
	}
}

// Counts reports how many chunks the last run created, skipped and removed.
func (spl *Splitter) Counts() (created, skipped, removed int64) {
	s := &spl.statSummary
	return s.Created, s.Skipped, s.Removed
}
