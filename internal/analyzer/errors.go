package analyzer

import "fmt"

// InputError reports missing or empty input text. No remote call and no
// fallback are attempted; the caller gets the error immediately.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// StoreError reports that persisting a completed analysis failed. The
// analysis itself succeeded; only the handoff to storage did not.
type StoreError struct {
	SessionKey string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to store analysis for session %s: %v", e.SessionKey, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
