// Package reputation holds the member points/level rules and the access
// predicates built on them. Everything here is storage-free; services feed
// it rows loaded from the database.
package reputation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by stores when the member does not exist.
var ErrNotFound = errors.New("member not found")

// ConfigurationError marks a broken level table. It is never defaulted away.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "level configuration: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// ValidationError rejects malformed input before anything is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

type MemberFailure struct {
	MemberID uint64
	Err      error
}

// PartialBatchFailure lists the members whose write failed in a batch award.
// Members not listed were updated and stay updated.
type PartialBatchFailure struct {
	Failures []MemberFailure
}

func (e *PartialBatchFailure) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%d: %v", f.MemberID, f.Err))
	}
	return fmt.Sprintf("batch award failed for %d member(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

func (e *PartialBatchFailure) MemberIDs() []uint64 {
	ids := make([]uint64, 0, len(e.Failures))
	for _, f := range e.Failures {
		ids = append(ids, f.MemberID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
