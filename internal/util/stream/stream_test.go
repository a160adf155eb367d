package stream

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(new(bytes.Buffer)))
	assert.False(t, IsTTY(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTTY(f))
}

func TestApplyOptimizationsOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	require.NoError(t, err)
	defer f.Close()

	errOut := new(bytes.Buffer)
	ApplyReadOptimizations(f, errOut)
	ApplyWriteOptimizations(f, errOut)
	assert.Empty(t, errOut.String())
}
