package constants

import (
	"os"
	"strconv"
)

const (
	// 6 lowercase letters, most significant first
	ChunkIndexDigits = 6
	MaxChunkCount    = 26 * 26 * 26 * 26 * 26 * 26

	// The whole chunk is held in memory
	MaxChunkSize = 1 << 30

	// Bounded staging area between an encoder and the temp file
	OutputBufferSize = 256 * 1024

	TempSuffix = ".tmp"
)

// sysexits(3)
const (
	ExitOK        = 0
	ExitUsage     = 64
	ExitDataErr   = 65
	ExitNoInput   = 66
	ExitSoftware  = 70
	ExitOSErr     = 71
	ExitCantCreat = 73
	ExitIOErr     = 74
)

type Incomparabe [0]func()

var LongTests bool

func init() {
	LongTests = isTruthy("TEST_CASPLIT_LONG")
}

func isTruthy(varname string) bool {
	envStr := os.Getenv(varname)
	if envStr != "" {
		if num, err := strconv.ParseUint(envStr, 10, 64); err != nil || num != 0 {
			return true
		}
	}
	return false
}
