package reputation

import (
	"math"
	"strings"
)

const (
	maxReasonLen = 255

	// MaxDelta bounds a single ledger entry in either direction.
	MaxDelta int64 = 1_000_000_000
)

// ValidateEntry rejects an append before it reaches storage.
func ValidateEntry(delta int64, reason string) error {
	if delta == 0 {
		return invalid("delta", "must be non-zero")
	}
	if delta > MaxDelta || delta < -MaxDelta {
		return invalid("delta", "out of range")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return invalid("reason", "must not be empty")
	}
	if len(reason) > maxReasonLen {
		return invalid("reason", "too long")
	}
	return nil
}

// ClampDelta returns the delta that can actually be applied to a
// non-negative balance: deductions stop at zero and awards stop at
// math.MaxInt64. The sign of the result always matches delta.
func ClampDelta(balance, delta int64) int64 {
	switch {
	case delta < 0 && delta < -balance:
		return -balance
	case delta > 0 && delta > math.MaxInt64-balance:
		return math.MaxInt64 - balance
	}
	return delta
}
