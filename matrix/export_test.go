// SPDX-License-Identifier: MIT
// Test-only bridges to unexported helpers. Compiled only under `go test`.

package matrix

// IsIntegerInRange_TestOnly exposes isIntegerInRange.
func IsIntegerInRange_TestOnly(v float64, min, max int) bool { return isIntegerInRange(v, min, max) }

// ToNumber_TestOnly exposes toNumber.
func ToNumber_TestOnly(v any) (float64, bool) { return toNumber(v) }

// FiniteOnlyOf_TestOnly resolves opts the way constructors do and returns the policy flag.
func FiniteOnlyOf_TestOnly(opts ...Option) bool { return gatherOptions(opts...).finiteOnly }
