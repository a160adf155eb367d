// Package chunkname derives and parses chunk filenames of the form
//
//	chunk.<ordinal>.<digest>[suffix]
//
// The ordinal is a fixed-width lowercase base-26 number (aaaaaa, aaaaab, ...)
// and the digest is lowercase hex, so byte-wise ordering of names follows
// chunk order.
package chunkname

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/anjor/casplit/internal/constants"
)

const Prefix = "chunk."

var ErrTooManyChunks = errors.New("too many chunks: reduce the input size or increase the chunk size")

func Format(ordinal uint64, digest []byte, suffix string) (string, error) {

	if ordinal >= constants.MaxChunkCount {
		return "", errors.Wrapf(ErrTooManyChunks, "chunk #%d", ordinal)
	}

	var sb strings.Builder
	sb.Grow(len(Prefix) + constants.ChunkIndexDigits + 1 + 2*len(digest) + len(suffix))

	sb.WriteString(Prefix)
	sb.WriteString(EncodeOrdinal(ordinal))
	sb.WriteByte('.')
	sb.WriteString(hex.EncodeToString(digest))
	sb.WriteString(suffix)

	return sb.String(), nil
}

// EncodeOrdinal renders the low 6 base-26 digits of ordinal, most
// significant first.
func EncodeOrdinal(ordinal uint64) string {
	var id [constants.ChunkIndexDigits]byte
	for i := len(id) - 1; i >= 0; i-- {
		id[i] = 'a' + byte(ordinal%26)
		ordinal /= 26
	}
	return string(id[:])
}

func DecodeOrdinal(id string) (ordinal uint64, err error) {
	if len(id) != constants.ChunkIndexDigits {
		return 0, errors.Errorf("chunk index '%s' is not %d characters long", id, constants.ChunkIndexDigits)
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 'a' || id[i] > 'z' {
			return 0, errors.Errorf("chunk index '%s' contains invalid character '%c'", id, id[i])
		}
		ordinal = ordinal*26 + uint64(id[i]-'a')
	}
	return
}

type Parsed struct {
	Ordinal uint64
	Digest  []byte
	Suffix  string
}

// Parse splits a chunk filename back into its components. The suffix is
// everything after the digest, including the leading dot.
func Parse(name string) (p Parsed, err error) {

	if !strings.HasPrefix(name, Prefix) {
		return p, errors.Errorf("'%s' does not start with '%s'", name, Prefix)
	}
	rest := name[len(Prefix):]

	dot := strings.IndexByte(rest, '.')
	if dot < 0 {
		return p, errors.Errorf("'%s' lacks a digest", name)
	}
	if p.Ordinal, err = DecodeOrdinal(rest[:dot]); err != nil {
		return p, errors.Wrapf(err, "'%s'", name)
	}
	rest = rest[dot+1:]

	hexLen := strings.IndexByte(rest, '.')
	if hexLen < 0 {
		hexLen = len(rest)
	}
	if p.Digest, err = hex.DecodeString(rest[:hexLen]); err != nil || len(p.Digest) == 0 {
		return p, errors.Errorf("'%s' carries an invalid digest", name)
	}
	if strings.ToLower(rest[:hexLen]) != rest[:hexLen] {
		return p, errors.Errorf("'%s' digest is not lowercase", name)
	}
	p.Suffix = rest[hexLen:]

	return p, nil
}
