package main

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjor/casplit"
	"github.com/anjor/casplit/internal/constants"
)

func splitInto(t *testing.T, payload []byte, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	argv := append(append([]string{"casplit"}, args...), "-", dir, "4K")
	spl, err := casplit.NewFromArgv(argv, io.Discard, io.Discard)
	require.NoError(t, err)
	defer spl.Destroy()
	require.NoError(t, spl.ProcessReader(bytes.NewReader(payload)))
	return dir
}

func TestJoinToStdout(t *testing.T) {
	payload := make([]byte, 50000)
	rand.New(rand.NewSource(2)).Read(payload)

	for _, flags := range [][]string{nil, {"-z"}, {"--compressor=zstd"}, {"--compressor=xz"}, {"--compressor=lz4"}} {
		dir := splitInto(t, payload, flags...)

		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
		require.Equal(t, constants.ExitOK, run([]string{"casjoin", "-v", dir}, stdout, stderr), stderr.String())
		assert.True(t, bytes.Equal(payload, stdout.Bytes()), "%v", flags)
		assert.Contains(t, stderr.String(), "Reassembled 13 chunks into 50,000 bytes (49 KiB)")
	}
}

func TestJoinToFile(t *testing.T) {
	payload := []byte(strings.Repeat("ABCDEFGHIJ", 1000))
	dir := splitInto(t, payload, "-z")

	target := filepath.Join(t.TempDir(), "restored")
	require.Equal(t, constants.ExitOK, run([]string{"casjoin", dir, target}, io.Discard, io.Discard))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, got))
}

func TestJoinDetectsDamage(t *testing.T) {
	payload := []byte(strings.Repeat("0123456789", 1000))
	dir := splitInto(t, payload)

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ents[1].Name()), []byte("tampered"), 0644))

	target := filepath.Join(t.TempDir(), "restored")
	assert.Equal(t, constants.ExitDataErr, run([]string{"casjoin", dir, target}, io.Discard, io.Discard))

	// a failed join never publishes the output
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))

	assert.Equal(t, constants.ExitOK, run([]string{"casjoin", "--no-verify", dir, target}, io.Discard, io.Discard))
}

func TestJoinDetectsGaps(t *testing.T) {
	dir := splitInto(t, make([]byte, 12*1024))

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, ents, 3)
	require.NoError(t, os.Remove(filepath.Join(dir, ents[1].Name())))

	stderr := new(bytes.Buffer)
	assert.Equal(t, constants.ExitDataErr, run([]string{"casjoin", dir}, io.Discard, stderr))
	assert.Contains(t, stderr.String(), "expected chunk #1")
}

func TestJoinUsage(t *testing.T) {
	assert.Equal(t, constants.ExitUsage, run([]string{"casjoin"}, io.Discard, io.Discard))
	assert.Equal(t, constants.ExitUsage, run([]string{"casjoin", "a", "b", "c"}, io.Discard, io.Discard))
	assert.Equal(t, constants.ExitUsage, run([]string{"casjoin", "--hash=md5", "a"}, io.Discard, io.Discard))
	assert.Equal(t, constants.ExitOK, run([]string{"casjoin", "-h"}, io.Discard, io.Discard))
}
