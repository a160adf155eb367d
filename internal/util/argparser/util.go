package argparser

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
)

// ugly as sin due to lack of lookaheads :/
var indenter = regexp.MustCompile(`(?m)^([^\n])`)
var nonOptIndenter = regexp.MustCompile(`(?m)^\s{0,12}([^\s\n\-])`)
var dashStripper = regexp.MustCompile(`(?m)^(\s*)\-\-`)

// SubHelp renders a registry entry description, and optionally its own
// option set, indented for inclusion into the main help text.
func SubHelp(description string, optSet *getopt.Set) string {

	sh := indenter.ReplaceAllString(description, `  $1`)

	if optSet == nil {
		return sh
	}

	b := bytes.NewBuffer(make([]byte, 0, 1024))
	optSet.PrintOptions(b)

	return sh + "\n  ------------\n   SubOptions\n" + string(dashStripper.ReplaceAll(
		nonOptIndenter.ReplaceAll(
			b.Bytes(),
			[]byte(`              $1`),
		),
		[]byte(`$1  `),
	))
}

// Parse runs getopt over args (args[0] is the program name) and returns the
// free-form parameters left over. Each option is handed to seen in the order
// it appears on the command line. Exactly wantParams free-form parameters
// are expected, a negative value disables the check.
func Parse(args []string, optSet *getopt.Set, wantParams int, seen func(getopt.Option)) (params []string, argErrs []error) {

	var fn func(getopt.Option) bool
	if seen != nil {
		fn = func(o getopt.Option) bool {
			seen(o)
			return true
		}
	}

	if err := optSet.Getopt(args, fn); err != nil {
		argErrs = append(argErrs, err)
		return
	}

	params = optSet.Args()

	if wantParams >= 0 && len(params) != wantParams {
		if len(params) > wantParams {
			argErrs = append(argErrs, fmt.Errorf(
				"unexpected free-form parameter(s): %s...",
				params[wantParams],
			))
		} else {
			argErrs = append(argErrs, fmt.Errorf(
				"expected %d parameter(s), got %d",
				wantParams,
				len(params),
			))
		}
	}

	return
}

var ErrInvalidSize = errors.New("invalid chunk size")

// ParseSize parses a positive byte count, optionally followed by a single
// k/K (KiB) or m/M (MiB) multiplier.
func ParseSize(token string) (int, error) {

	digits, mult := token, uint64(1)
	if n := len(token); n > 0 {
		switch token[n-1] {
		case 'k', 'K':
			digits, mult = token[:n-1], 1024
		case 'm', 'M':
			digits, mult = token[:n-1], 1024*1024
		}
	}

	// ParseUint accepts a leading '+', sizes may not
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, errors.Wrapf(ErrInvalidSize, "'%s'", token)
	}

	val, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSize, "'%s': %s", token, err)
	}

	if val == 0 || val > uint64(math.MaxInt)/mult {
		return 0, errors.Wrapf(ErrInvalidSize, "'%s' out of range [1:%d]", token, uint64(math.MaxInt))
	}

	return int(val * mult), nil
}
