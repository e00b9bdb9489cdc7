package render

import "fmt"

// Error represents a failure to render the resume document. Remediation
// carries user-facing guidance when the rendering toolchain itself is the
// problem.
type Error struct {
	Message     string
	Remediation string
	Cause       error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("render error: %s", e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Remediation != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Remediation)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}
