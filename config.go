package casplit

import (
	"github.com/pborman/getopt/v2"

	cspencoder "github.com/anjor/casplit/internal/encoder"
	"github.com/anjor/casplit/internal/hasher"
)

type config struct {
	optSet *getopt.Set

	//
	// Bulk of CLI options definition starts here, the rest further down in initArgvParser()
	//

	Help         bool `getopt:"-h --help Display help"`
	DeleteStale  bool `getopt:"-d        Delete every other regular file in the output directory after the run"`
	SkipExisting bool `getopt:"-s        Skip chunks whose target name already exists"`
	Verbose      bool `getopt:"-v        Output all chunks written/skipped/deleted, followed by a summary"`
	Compress     bool `getopt:"-z        Compress chunks (gzip unless --compressor says otherwise)"`
	Stats        bool `getopt:"--stats   Print timing, I/O and resource usage statistics to stderr"`

	hashFunc   string // hash function to use: option/helptext in initArgvParser()
	compressor string // codec name: option/helptext in initArgvParser()

	// -0 .. -9, last one on the command line wins
	levelFlags       [10]bool
	compressionLevel int

	// free-form parameters
	inputPath string
	outputDir string
	chunkSize int
}

// InputStdin as the input parameter selects standard input
const InputStdin = "-"

func defaultConfig() config {
	return config{
		hashFunc:         hasher.Default,
		compressor:       "none",
		compressionLevel: cspencoder.DefaultLevel,
	}
}
