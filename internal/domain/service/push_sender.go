// Package service defines the interfaces for external collaborators.
package service

import (
	"context"
)

// PushSender defines the interface for the push delivery relay.
// The relay is fire-and-forget: no delivery confirmation is consumed, and
// callers must treat any returned error as transient and non-fatal.
type PushSender interface {
	// Send attempts delivery of a single push message to a device token.
	Send(ctx context.Context, token, title, body string) error
}
