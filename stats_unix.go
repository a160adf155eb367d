//go:build !windows
// +build !windows

package casplit

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// accountRusage folds one getrusage(2) sample into the counters, subtracting
// it when sign is negative. A sample taken before the split and one taken
// after it leave only the cost of the run itself.
func (sys *sysStats) accountRusage(sign int64) {
	var ru unix.Rusage
	if unix.Getrusage(unix.RUSAGE_SELF, &ru) != nil {
		return
	}

	for _, c := range []struct {
		dst *int64
		val int64
	}{
		{&sys.CpuUserNsecs, unix.TimevalToNsec(ru.Utime)},
		{&sys.CpuSysNsecs, unix.TimevalToNsec(ru.Stime)},
		{&sys.MinFlt, int64(ru.Minflt)},
		{&sys.MajFlt, int64(ru.Majflt)},
		{&sys.BioRead, int64(ru.Inblock)},
		{&sys.BioWrite, int64(ru.Oublock)},
		{&sys.Sigs, int64(ru.Nsignals)},
		{&sys.CtxSwYield, int64(ru.Nvcsw)},
		{&sys.CtxSwForced, int64(ru.Nivcsw)},
	} {
		*c.dst += sign * c.val
	}

	// a high-water mark, never a difference
	if sign > 0 {
		sys.MaxRssBytes = int64(ru.Maxrss)
		if runtime.GOOS != "darwin" {
			sys.MaxRssBytes *= 1024
		}
	}
}

func init() {
	preProcessTasks = func(spl *Splitter) { spl.statSummary.SysStats.accountRusage(-1) }
	postProcessTasks = func(spl *Splitter) { spl.statSummary.SysStats.accountRusage(1) }
}
