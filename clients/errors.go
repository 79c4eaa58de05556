package clients

import "fmt"

// RequestError reports a non-2xx gateway reply.
type RequestError struct {
	StatusCode   int
	Body         string
	ErrorDetails map[string]any
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("gateway request failed: status %d body %s", r.StatusCode, r.Body)
}
