package errors

// UsageError marks an error caused by wrong CLI usage: unknown command, extra args or bad flags.
// The CLI prints command usage after such errors.
type UsageError struct {
	cause error
}

func NewUsageError(err error) error {
	return &UsageError{cause: err}
}

func (e *UsageError) Error() string {
	return e.cause.Error()
}

func (e *UsageError) Unwrap() error {
	return e.cause
}
