package cspcollector

// Collector accumulates the names of chunks produced (or found already in
// place) during a run.
type Collector interface {
	AppendName(chunkName string)
	// Names hands over everything appended so far, in append order
	Names() []string
	Len() int
}

type Initializer func(sizeHint int) Collector
