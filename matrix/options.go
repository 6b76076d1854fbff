// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication kernels.
// This file defines:
//   - MulOption / mulOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherMulOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers for MulParallel.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 0"
)

// MulOption configures MulParallel. Safe to apply repeatedly; the last one wins.
type MulOption func(*mulOptions)

// mulOptions stores the effective configuration after applying MulOption setters.
type mulOptions struct {
	workers int // > 0 after gatherMulOptions
}

// WithWorkers bounds the number of goroutines MulParallel runs at once.
// n == 0 restores the default (GOMAXPROCS). The effective bound is further
// capped by the number of output rows.
//
// Panics with a stable message when n < 0.
func WithWorkers(n int) MulOption {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *mulOptions) { o.workers = n }
}

// gatherMulOptions applies user options over the defaults and resolves
// DefaultWorkers to the current GOMAXPROCS.
func gatherMulOptions(user ...MulOption) mulOptions {
	o := mulOptions{workers: DefaultWorkers}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
