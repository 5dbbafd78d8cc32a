package client

import (
	"errors"

	sdkerrors "github.com/insanitybit/haveibeenpwnd/client/internal/errors"
	"github.com/insanitybit/haveibeenpwnd/client/internal/types"
)

// Error is the failure type returned by every Send. Use errors.As to inspect
// Kind, StatusCode, Body and RetryAfter.
type Error = sdkerrors.Error

// ErrorKind identifies which stage of a request failed.
type ErrorKind = sdkerrors.Kind

const (
	KindNetwork = sdkerrors.Network
	KindDecode  = sdkerrors.Decode
	KindAPI     = sdkerrors.API
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrNotFound         = types.ErrNotFound
	ErrInvalidUserAgent = types.ErrInvalidUserAgent
)

// IsNotFound reports whether err is ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsNetworkError reports whether the request failed before a response arrived.
func IsNetworkError(err error) bool { return sdkerrors.Is(err, sdkerrors.Network) }

// IsDecodeError reports whether a response body could not be decoded.
func IsDecodeError(err error) bool { return sdkerrors.Is(err, sdkerrors.Decode) }

// IsAPIError reports whether upstream answered with a non-success status.
func IsAPIError(err error) bool { return sdkerrors.Is(err, sdkerrors.API) }

// IsRetryable reports whether repeating the request later might succeed
// (network failures, 408, 429 and 5xx). The client never retries by itself.
func IsRetryable(err error) bool { return sdkerrors.IsRecoverable(err) }

// StatusCode returns the HTTP status attached to err, or 0.
func StatusCode(err error) int { return sdkerrors.StatusCode(err) }
