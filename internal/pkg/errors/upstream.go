package errors

import (
	"context"
	"errors"
	"net"
)

// ClassifyUpstream maps a transport-level error from an external provider
// call to UPSTREAM_TIMEOUT or UPSTREAM_UNAVAILABLE.
func ClassifyUpstream(err error) *AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUpstreamTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrUpstreamTimeout
	}
	return ErrUpstreamUnavailable
}
