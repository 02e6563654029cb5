// Package result carries the outcome of business operations that can fail
// without being an error, such as a rule rejecting a business event.
package result

import "strings"

// ValidationFailure describes why a single member failed a business rule.
type ValidationFailure struct {
	MemberName string `json:"memberName,omitempty"`
	Message    string `json:"message"`
}

// Result is either Ok or a failure carrying a message and optional
// validation failures. The zero value is Ok.
type Result struct {
	failed   bool
	message  string
	failures []ValidationFailure
}

// Ok returns a successful result.
func Ok() Result {
	return Result{}
}

// Fail returns a failed result.
func Fail(message string, failures ...ValidationFailure) Result {
	return Result{failed: true, message: message, failures: failures}
}

// Failed reports whether the result is a failure.
func (r Result) Failed() bool {
	return r.failed
}

// Succeeded reports whether the result is Ok.
func (r Result) Succeeded() bool {
	return !r.failed
}

// Message returns the failure message.
func (r Result) Message() string {
	return r.message
}

// Failures returns a copy of the validation failures.
func (r Result) Failures() []ValidationFailure {
	if len(r.failures) == 0 {
		return nil
	}
	out := make([]ValidationFailure, len(r.failures))
	copy(out, r.failures)
	return out
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if !r.failed {
		return "ok"
	}
	if len(r.failures) == 0 {
		return "failed: " + r.message
	}

	parts := make([]string, 0, len(r.failures))
	for _, f := range r.failures {
		if f.MemberName == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.MemberName+": "+f.Message)
	}
	return "failed: " + r.message + " (" + strings.Join(parts, "; ") + ")"
}

// Combine returns the first failed result, or Ok when none failed.
func Combine(results ...Result) Result {
	for _, r := range results {
		if r.Failed() {
			return r
		}
	}
	return Ok()
}
