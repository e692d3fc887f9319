// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"errors"
	"fmt"
	"net/http"
)

// DiscoveryError represents a classified failure of one proxy attempt,
// or the exhaustion of the whole chain.
type DiscoveryError struct {
	Type    ErrorType
	Message string
	Err     error
}

// ErrorType defines the failure classes of the discovery path.
type ErrorType int

const (
	// ErrorTypeUnknown unclassified failure.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeTransport network unreachable, DNS failure, or timeout.
	ErrorTypeTransport
	// ErrorTypeUpstreamRejection HTTP non-2xx or provider status != OK.
	ErrorTypeUpstreamRejection
	// ErrorTypeEnvelopeMismatch a wrapping proxy's own success marker is absent or false.
	ErrorTypeEnvelopeMismatch
	// ErrorTypeDecode response body is not valid JSON or has the wrong shape.
	ErrorTypeDecode
	// ErrorTypeExhausted every access path was attempted without success.
	ErrorTypeExhausted
)

func (e *DiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// IsExhausted reports whether the error means the whole proxy chain was
// walked without a usable response.
func IsExhausted(err error) bool {
	var discErr *DiscoveryError
	if errors.As(err, &discErr) {
		return discErr.Type == ErrorTypeExhausted
	}

	return false
}

// IsTransportError reports whether the error was a network-level failure.
func IsTransportError(err error) bool {
	var discErr *DiscoveryError
	if errors.As(err, &discErr) {
		return discErr.Type == ErrorTypeTransport
	}

	return false
}

// ClassifyHTTPError maps an HTTP status code onto the discovery error taxonomy.
func ClassifyHTTPError(statusCode int) *DiscoveryError {
	switch statusCode {
	case http.StatusTooManyRequests, http.StatusForbidden, http.StatusBadRequest, http.StatusNotFound:
		return &DiscoveryError{
			Type:    ErrorTypeUpstreamRejection,
			Message: fmt.Sprintf("upstream rejected the request (HTTP %d)", statusCode),
		}
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return &DiscoveryError{
			Type:    ErrorTypeTransport,
			Message: fmt.Sprintf("service unavailable (HTTP %d)", statusCode),
		}
	default:
		return &DiscoveryError{
			Type:    ErrorTypeUpstreamRejection,
			Message: fmt.Sprintf("HTTP %d", statusCode),
		}
	}
}
