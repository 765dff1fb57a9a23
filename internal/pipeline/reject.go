package pipeline

import "errors"

// rejection marks an error that skips one source file instead of aborting
// the run.
type rejection struct {
	err error
}

func (r rejection) Error() string { return r.err.Error() }
func (r rejection) Unwrap() error { return r.err }

func isRejection(err error) bool {
	var r rejection
	return errors.As(err, &r)
}
