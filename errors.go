package casplit

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/anjor/casplit/internal/constants"
)

// ErrHelp is returned when the help text was requested and printed.
var ErrHelp = errors.New("help requested")

// ExitError carries the sysexits(3) status a process should terminate with.
type ExitError struct {
	Status int
	Err    error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }
func (e *ExitError) Cause() error  { return e.Err }

func exitErrorf(status int, err error, format string, args ...interface{}) error {
	if err == nil {
		return &ExitError{Status: status, Err: errors.Errorf(format, args...)}
	}
	return &ExitError{Status: status, Err: errors.Wrapf(err, format, args...)}
}

// ExitStatus maps an error returned by this package onto a process exit
// status.
func ExitStatus(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return constants.ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Status
	}
	return constants.ExitSoftware
}

type usageErrors []error

func (ue usageErrors) Error() string {
	if len(ue) == 1 {
		return ue[0].Error()
	}
	return fmt.Sprintf("%s (and %d more argument errors)", ue[0], len(ue)-1)
}
