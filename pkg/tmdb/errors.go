package tmdb

import (
	"errors"
	"fmt"
)

// genericFetchError is shown when a non-success response carries no usable
// status message.
const genericFetchError = "无法获取数据"

// NetworkError is a transport-level failure: no response was obtained.
// Callers can offer a retry for this class.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteError is a non-success API response. Message is the upstream
// status_message when one could be extracted, otherwise a generic fallback.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// IsNetworkError reports whether err is transport-level, as opposed to a
// response the server actually produced.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
