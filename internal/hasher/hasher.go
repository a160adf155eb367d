package hasher

import (
	"hash"

	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DigestSize is the width of every digest used for naming chunks
const DigestSize = 32

const Default = "sha2-256"

type Initializer func() hash.Hash

var AvailableHashers = map[string]Initializer{
	"sha2-256": sha256.New,
	"sha3-256": sha3.New256,
	"blake2b-256": func() hash.Hash {
		h, err := blake2b.New256(nil)
		if err != nil {
			// only an oversized key fails
			panic(err)
		}
		return h
	},
	"blake3": func() hash.Hash { return blake3.New() },
}
