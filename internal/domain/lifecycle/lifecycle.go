// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each fx OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
