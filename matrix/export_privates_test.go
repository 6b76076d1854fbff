// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for unexported helpers.
//
// Purpose:
//   - Expose the resolved multiplication options and panic messages to matrix_test ONLY.
//   - Compiled only with `go test`, invisible in production builds.

// MulOptionsSnapshot is a read-only view of the resolved mulOptions.
type MulOptionsSnapshot struct {
	Workers int
}

// GatherMulOptions_TestOnly forwards to gatherMulOptions.
func GatherMulOptions_TestOnly(opts ...MulOption) MulOptionsSnapshot {
	o := gatherMulOptions(opts...)

	return MulOptionsSnapshot{Workers: o.workers}
}

// Panic message exports to avoid "magic strings" in tests.
const PanicWorkersInvalid_TestOnly = panicWorkersInvalid
