package reporter

import "github.com/orsinium-labs/enum"

// Response prefixes of the version line.
const (
	SuccessPrefix = "Hello from Flask! PostgreSQL version: "
	FailurePrefix = "Error connecting to database: "
)

type outcome enum.Member[string]

var (
	// OutcomeSuccess marks a Result holding the database version.
	OutcomeSuccess = outcome{Value: "success"}
	// OutcomeFailure marks a Result holding the error that prevented
	// reading the version.
	OutcomeFailure = outcome{Value: "failure"}
)

// Result is the outcome of a single Report call: either the version string
// reported by the database or the error that prevented reading it.
type Result struct {
	Outcome outcome
	Version string
	Err     error
}

// Success returns a successful Result holding version.
func Success(version string) Result {
	return Result{Outcome: OutcomeSuccess, Version: version}
}

// Failure returns a failed Result holding err.
func Failure(err error) Result {
	return Result{Outcome: OutcomeFailure, Err: err}
}

// OK reports whether the version was read.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// Detail returns the version on success and the error message on failure.
func (r Result) Detail() string {
	if r.OK() {
		return r.Version
	}
	if r.Err == nil {
		return "unknown error"
	}
	return r.Err.Error()
}

// String renders the human readable line returned to clients.
func (r Result) String() string {
	if r.OK() {
		return SuccessPrefix + r.Detail()
	}
	return FailurePrefix + r.Detail()
}
