package casplit

import (
	"fmt"
	"strings"
	"time"

	"github.com/anjor/casplit/internal/util/text"
)

type statSummary struct {
	Chunks       int64
	Created      int64
	Skipped      int64
	Removed      int64
	BytesRead    int64
	BytesWritten int64

	// size of the last chunk, the only one that may be short
	TailChunkSize int64
	SysStats      sysStats
}

type sysStats struct {
	ElapsedNsecs int64
	ReadCalls    int64

	CpuUserNsecs int64
	CpuSysNsecs  int64
	MaxRssBytes  int64
	MinFlt       int64
	MajFlt       int64
	BioRead      int64
	BioWrite     int64
	Sigs         int64
	CtxSwYield   int64
	CtxSwForced  int64
}

// OutputSummary prints the run totals when verbose output is enabled, and
// the extended statistics when --stats was given.
func (spl *Splitter) OutputSummary() {
	s := &spl.statSummary

	if spl.cfg.Verbose {
		fmt.Fprintf(spl.stdout, "Total created: %d, skipped: %d, removed: %d\n",
			s.Created,
			s.Skipped,
			s.Removed,
		)
	}

	if !spl.cfg.Stats {
		return
	}

	sys := &s.SysStats
	var b strings.Builder

	fmt.Fprintf(&b, "\nRan with args: %s\n", strings.Join(spl.Arguments(), " "))
	fmt.Fprintf(&b, "Processing took %0.2f seconds using %0.2f vCPU and %s peak memory\n",
		float64(sys.ElapsedNsecs)/float64(time.Second),
		float64(sys.CpuUserNsecs+sys.CpuSysNsecs)/float64(sys.ElapsedNsecs+1),
		text.Sizes(sys.MaxRssBytes),
	)
	fmt.Fprintf(&b, "Block I/O ops in/out: %s/%s, page faults minor/major: %s/%s, context switches voluntary/forced: %s/%s\n",
		text.Commify64(sys.BioRead),
		text.Commify64(sys.BioWrite),
		text.Commify64(sys.MinFlt),
		text.Commify64(sys.MajFlt),
		text.Commify64(sys.CtxSwYield),
		text.Commify64(sys.CtxSwForced),
	)
	fmt.Fprintf(&b, "Performing %s read() syscalls into a %s buffer\n",
		text.Commify64(sys.ReadCalls),
		text.Sizes(int64(spl.cfg.chunkSize)),
	)
	fmt.Fprintf(&b, "Read %s, split into %s chunks (last one %s), wrote %s\n",
		text.Sizes(s.BytesRead),
		text.Commify64(s.Chunks),
		text.Sizes(s.TailChunkSize),
		text.Sizes(s.BytesWritten),
	)
	if s.Chunks > 0 {
		fmt.Fprintf(&b, "Spent %s per chunk on average\n",
			(time.Duration(sys.ElapsedNsecs) / time.Duration(s.Chunks)).Round(time.Microsecond),
		)
	}
	fmt.Fprintf(&b, "Chunks created: %s, skipped: %s, removed: %s\n\n",
		text.Commify64(s.Created),
		text.Commify64(s.Skipped),
		text.Commify64(s.Removed),
	)

	fmt.Fprint(spl.stderr, b.String())
}
