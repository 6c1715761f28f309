package matcher

import "fmt"

// GatewayError reports a failed call to the external scoring service:
// transport failure, timeout, or a non-2xx response. It never covers a
// successful response without a recognizable payload.
type GatewayError struct {
	StatusCode int // zero for transport failures
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("matching gateway: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("matching gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
