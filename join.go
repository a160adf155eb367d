package casplit

import (
	"bytes"
	"hash"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/anjor/casplit/internal/chunkname"
	"github.com/anjor/casplit/internal/constants"
	cspencoder "github.com/anjor/casplit/internal/encoder"
	"github.com/anjor/casplit/internal/hasher"
	"github.com/anjor/casplit/internal/reconciler"
)

var ErrChunkSetBroken = errors.New("chunk set is not contiguous")
var ErrDigestMismatch = errors.New("chunk content does not match its name")

type ReassembleOptions struct {
	// Hash names the function the chunks were named with, hasher.Default if empty
	Hash string
	// SkipVerify disables digest checking of decoded chunk content
	SkipVerify bool
}

func codecForSuffix(suffix string) (cspencoder.Codec, bool) {
	for _, c := range availableCompressors {
		if c.Suffix == suffix {
			return c, true
		}
	}
	return cspencoder.Codec{}, false
}

// Reassemble writes the original stream back out of a chunk directory. Only
// regular files named like chunks are considered. The chunk ordinals must
// form an uninterrupted sequence starting at zero. Every chunk is decoded
// according to its name suffix and, unless disabled, checked against the
// digest in its name.
func Reassemble(dir string, out io.Writer, opts ReassembleOptions) (chunks int, err error) {

	hashName := opts.Hash
	if hashName == "" {
		hashName = hasher.Default
	}
	init, exists := hasher.AvailableHashers[hashName]
	if !exists {
		return 0, errors.Errorf("unknown hash function '%s'", hashName)
	}

	live, err := reconciler.ListRegular(dir)
	if err != nil {
		return 0, err
	}

	names := live[:0]
	for _, n := range live {
		// leftovers of an interrupted write are not part of the set
		if strings.HasPrefix(n, chunkname.Prefix) && !strings.HasSuffix(n, constants.TempSuffix) {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	var h hash.Hash
	if !opts.SkipVerify {
		h = init()
	}

	for i, n := range names {
		p, err := chunkname.Parse(n)
		if err != nil {
			return chunks, err
		}
		if p.Ordinal != uint64(i) {
			return chunks, errors.Wrapf(ErrChunkSetBroken, "expected chunk #%d, found '%s'", i, n)
		}
		if err := reassembleOne(dir, n, p, h, out); err != nil {
			return chunks, err
		}
		chunks++
	}

	return chunks, nil
}

func reassembleOne(dir, name string, p chunkname.Parsed, h hash.Hash, out io.Writer) error {

	codec, known := codecForSuffix(p.Suffix)
	if !known {
		return errors.Errorf("'%s' carries unknown suffix '%s'", name, p.Suffix)
	}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := codec.NewDecoder(f)
	if err != nil {
		return errors.Wrapf(err, "cannot decode %s", name)
	}
	defer dec.Close()

	var src io.Reader = dec
	if h != nil {
		h.Reset()
		src = io.TeeReader(dec, h)
	}

	if _, err := io.Copy(out, src); err != nil {
		return errors.Wrapf(err, "cannot reassemble %s", name)
	}

	if h != nil && !bytes.Equal(h.Sum(nil), p.Digest) {
		return errors.Wrapf(ErrDigestMismatch, "%s", name)
	}

	return nil
}
