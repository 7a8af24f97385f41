package search

import "fmt"

// UpstreamStatusError reports a non-200 response from the upstream API.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.StatusCode)
}
