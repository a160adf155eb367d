package fixedsize

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cspchunker "github.com/anjor/casplit/internal/chunker"
)

func TestFillWindows(t *testing.T) {

	r := NewReader(strings.NewReader("ABCDEFGHIJ"))
	buf := make([]byte, 4)

	var seen []string
	for {
		tee := new(bytes.Buffer)
		n, err := r.Fill(buf, tee)
		require.NoError(t, err)
		if n == 0 {
			break
		}
		assert.Equal(t, string(buf[:n]), tee.String())
		seen = append(seen, string(buf[:n]))
		if r.Exhausted() {
			break
		}
	}

	assert.Equal(t, []string{"ABCD", "EFGH", "IJ"}, seen)
	assert.True(t, r.Exhausted())
	assert.EqualValues(t, 10, r.Offset())
}

func TestFillAssemblesShortReads(t *testing.T) {

	r := NewReader(iotest.OneByteReader(strings.NewReader("0123456789")))
	buf := make([]byte, 8)

	n, err := r.Fill(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.False(t, r.Exhausted())
	assert.Equal(t, "01234567", string(buf))

	n, err = r.Fill(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, r.Exhausted())
}

func TestFillExactMultiple(t *testing.T) {

	r := NewReader(strings.NewReader("ABCDEFGH"))
	buf := make([]byte, 4)

	for _, want := range []string{"ABCD", "EFGH"} {
		n, err := r.Fill(buf, nil)
		require.NoError(t, err)
		assert.Equal(t, want, string(buf[:n]))
	}

	n, err := r.Fill(buf, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, r.Exhausted())
}

func TestFillEmpty(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	n, err := r.Fill(make([]byte, 16), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, r.Exhausted())
}

func TestFillNeverReadsPastBudget(t *testing.T) {
	src := strings.NewReader("ABCDEFGHIJ")
	r := NewReader(src)

	_, err := r.Fill(make([]byte, 3), nil)
	require.NoError(t, err)

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "DEFGHIJ", string(rest))
}

func TestFillPropagatesErrors(t *testing.T) {
	r := NewReader(io.MultiReader(
		strings.NewReader("AB"),
		iotest.ErrReader(io.ErrClosedPipe),
	))

	n, err := r.Fill(make([]byte, 8), nil)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestSourceAccounting(t *testing.T) {

	var src cspchunker.Source = NewReader(iotest.OneByteReader(strings.NewReader("ABCDEF")))
	buf := make([]byte, 4)

	n, err := src.Fill(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.False(t, src.Exhausted())
	assert.EqualValues(t, 4, src.Offset())
	assert.EqualValues(t, 4, src.ReadCalls())

	c := cspchunker.Chunk{Ordinal: 0, Raw: buf[:n]}
	assert.Equal(t, 4, c.Size())

	n, err = src.Fill(buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, src.Exhausted())
	assert.EqualValues(t, 6, src.Offset())
}
