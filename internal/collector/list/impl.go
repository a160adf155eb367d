package list

import (
	cspcollector "github.com/anjor/casplit/internal/collector"
)

type collector struct {
	names []string
}

func NewCollector(sizeHint int) cspcollector.Collector {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &collector{names: make([]string, 0, sizeHint)}
}

func (co *collector) AppendName(n string) { co.names = append(co.names, n) }
func (co *collector) Names() []string     { return co.names }
func (co *collector) Len() int            { return len(co.names) }
