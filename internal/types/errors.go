package types

import "fmt"

// The four failure kinds of a generation attempt. Each maps to a distinct
// HTTP status and user-visible message at the API boundary; none is fatal
// to the process.

// InvalidRequestError means the user's input was bad or missing. The user
// can fix the input and resubmit.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// UpstreamError wraps a failed model call: network failure, non-2xx
// response, or an empty completion. It is surfaced to the user with a
// retry affordance but never auto-retried.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model request failed: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// ParseError means the completion did not match the file-boundary
// conventions the prompt asked for. RawText carries the completion so the
// user can see what the model produced and retry with adjusted
// requirements.
type ParseError struct {
	Reason  string
	RawText string
}

func (e *ParseError) Error() string {
	return "could not parse model output: " + e.Reason
}

// PackagingError means archive assembly failed, including rejected
// path-traversal attempts. No partial archive is ever returned.
type PackagingError struct {
	Path   string
	Reason string
}

func (e *PackagingError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("packaging failed for %q: %s", e.Path, e.Reason)
	}
	return "packaging failed: " + e.Reason
}
