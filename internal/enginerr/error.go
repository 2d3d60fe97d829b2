package enginerr

import (
	"github.com/pkg/errors"
)

type kindedError struct {
	kind Kind
	err  error
}

func (e *kindedError) Error() string { return e.err.Error() }
func (e *kindedError) Cause() error  { return e.err }
func (e *kindedError) Unwrap() error { return e.err }

// New creates a Kind-tagged error with a message: pkg/errors.New with a
// Kind as its extra first argument.
func New(kind Kind, msg string) error {
	return &kindedError{kind: kind, err: errors.New(msg)}
}

// Wrap tags an existing error with a Kind, preserving its cause chain so
// errors.Cause still reaches the original error for logging.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &kindedError{kind: kind, err: errors.Wrap(err, msg)}
}

// KindOf walks the cause chain looking for a Kind tag. Errors with no tag
// are treated as PipelineFailed, the catch-all per §7.
func KindOf(err error) Kind {
	for err != nil {
		if ke, ok := err.(*kindedError); ok {
			return ke.kind
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return EKind.PipelineFailed()
}
