package reconciler

import (
	"os"
	"sort"
)

type Reporter interface {
	Removed(name string)
	RemoveFailed(name string, err error)
}

// ListRegular returns the names of the regular files in dir. Symlinks,
// directories and special files are never candidates for removal.
func ListRegular(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	live := make([]string, 0, len(ents))
	for _, e := range ents {
		if e.Type().IsRegular() {
			live = append(live, e.Name())
		}
	}
	return live, nil
}

// Reconcile removes every live name not present in kept and returns the
// number of successful removals. Both slices are sorted in place.
//
// The merge walks both lists once, so a directory with n entries costs
// O(n log n) for the sorts and O(n) for the comparison. A failed removal is
// reported and does not stop the walk.
func Reconcile(kept, live []string, remove func(name string) error, rep Reporter) (removed int) {

	sort.Strings(kept)
	sort.Strings(live)

	var keptIdx int
	for _, name := range live {

		for keptIdx < len(kept) && kept[keptIdx] < name {
			keptIdx++
		}

		if keptIdx < len(kept) && kept[keptIdx] == name {
			continue
		}

		if err := remove(name); err != nil {
			rep.RemoveFailed(name, err)
			continue
		}

		rep.Removed(name)
		removed++
	}

	return
}
