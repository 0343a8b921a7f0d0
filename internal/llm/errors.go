package llm

import (
	"errors"
	"fmt"
)

// RemoteServiceError reports that the inference service was unreachable,
// timed out, or returned unusable data after the client exhausted its
// retries. Callers recover by switching to the local heuristic path.
type RemoteServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("inference %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("inference %s failed: %v", e.Op, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// IsRemoteServiceError reports whether err is (or wraps) a RemoteServiceError.
func IsRemoteServiceError(err error) bool {
	var rse *RemoteServiceError
	return errors.As(err, &rse)
}
