package hasher

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestWidth(t *testing.T) {
	for name, init := range AvailableHashers {
		h := init()
		require.NotNil(t, h, name)
		assert.Equal(t, DigestSize, h.Size(), name)
		h.Write([]byte("ABCD")) //nolint:errcheck
		assert.Len(t, h.Sum(nil), DigestSize, name)
	}
}

func TestDefaultIsSha256(t *testing.T) {
	h := AvailableHashers[Default]()
	h.Write([]byte("ABCD")) //nolint:errcheck
	assert.Equal(t,
		"e12e115acf4552b2568b55e93cbd39394c4ef81c82447fafc997882a02d23677",
		hex.EncodeToString(h.Sum(nil)),
	)
}

func TestResetDropsState(t *testing.T) {
	for name, init := range AvailableHashers {
		h := init()
		h.Write([]byte("stale")) //nolint:errcheck
		h.Reset()
		h.Write([]byte("ABCD")) //nolint:errcheck

		fresh := init()
		fresh.Write([]byte("ABCD")) //nolint:errcheck

		assert.Equal(t, fresh.Sum(nil), h.Sum(nil), name)
	}
}

func TestInitializersNeverYieldNil(t *testing.T) {
	for name, init := range AvailableHashers {
		assert.NotPanics(t, func() {
			assert.NotNil(t, init(), name)
		}, name)
	}
}
