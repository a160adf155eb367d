package casplit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjor/casplit/internal/constants"
)

func TestReassembleIgnoresStrangers(t *testing.T) {
	h := newHarness(t)
	payload := randomPayload(9000, 4)

	_, err := h.split(payload, "2K", "-z")
	require.NoError(t, err)

	names := h.files()
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "README"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, names[0]+constants.TempSuffix), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(h.dir, "chunk.dir"), 0755))

	out := new(bytes.Buffer)
	chunks, err := Reassemble(h.dir, out, ReassembleOptions{})
	require.NoError(t, err)
	assert.Equal(t, len(names), chunks)
	assert.True(t, bytes.Equal(payload, out.Bytes()))
}

func TestReassembleEmptyDir(t *testing.T) {
	out := new(bytes.Buffer)
	chunks, err := Reassemble(t.TempDir(), out, ReassembleOptions{})
	require.NoError(t, err)
	assert.Zero(t, chunks)
	assert.Zero(t, out.Len())
}

func TestReassembleRejectsBrokenSets(t *testing.T) {
	h := newHarness(t)

	_, err := h.split(randomPayload(4000, 8), "1K")
	require.NoError(t, err)
	names := h.files()
	require.Len(t, names, 4)

	require.NoError(t, os.Remove(filepath.Join(h.dir, names[0])))
	_, err = Reassemble(h.dir, new(bytes.Buffer), ReassembleOptions{})
	assert.ErrorIs(t, err, ErrChunkSetBroken)

	_, err = Reassemble(h.dir, new(bytes.Buffer), ReassembleOptions{Hash: "md5"})
	assert.Error(t, err)
}

func TestReassembleUnknownSuffix(t *testing.T) {
	h := newHarness(t)

	_, err := h.split([]byte("ABCD"), "4")
	require.NoError(t, err)
	name := h.files()[0]
	require.NoError(t, os.Rename(filepath.Join(h.dir, name), filepath.Join(h.dir, name+".bz2")))

	_, err = Reassemble(h.dir, new(bytes.Buffer), ReassembleOptions{})
	assert.ErrorContains(t, err, "unknown suffix '.bz2'")
}
