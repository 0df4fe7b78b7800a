// Package lifecycle holds shared shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of delivery servers and
// subscription teardown.
const DefaultTimeout = 10 * time.Second
