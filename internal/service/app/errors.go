package app

import "os"

// SignalError is the root context cancellation cause when an OS signal is received.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return "received " + e.Signal.String()
}
