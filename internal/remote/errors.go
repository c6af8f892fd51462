package remote

import "fmt"

// RejectedError is a non-200 answer from the authority. Message is the
// server-supplied "error" text and may be empty.
type RejectedError struct {
	Op      string
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s rejected with status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s rejected with status %d: %s", e.Op, e.Status, e.Message)
}

// TransportError covers unreachable authorities and unusable responses.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }
