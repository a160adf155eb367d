package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

func Commify(inVal int) string     { return humanize.Comma(int64(inVal)) }
func Commify64(inVal int64) string { return humanize.Comma(inVal) }

// Sizes renders a byte amount both exactly and in IEC units.
func Sizes(inVal int64) string {
	if inVal < 1024 {
		return Commify64(inVal) + " bytes"
	}
	return fmt.Sprintf("%s bytes (%s)", Commify64(inVal), humanize.IBytes(uint64(inVal)))
}

// AvailableMapKeys lists the keys of a registry as a sorted, quoted string
// suitable for help texts and error messages.
func AvailableMapKeys[V any](m map[string]V) string {
	avail := make([]string, 0, len(m))
	for k := range m {
		avail = append(avail, fmt.Sprintf(`'%s'`, k))
	}
	sort.Strings(avail)
	return strings.Join(avail, ", ")
}
