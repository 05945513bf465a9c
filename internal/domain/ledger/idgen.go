// Package ledger implements the goal ledger engine: history entry
// normalization, balance accumulation and savings projections.
package ledger

import "github.com/google/uuid"

// IDGenerator produces unique identifiers for history entries. Injected
// so tests can substitute a deterministic sequence.
type IDGenerator interface {
	Next() string
}

// UUIDGenerator generates random UUID identifiers.
type UUIDGenerator struct{}

// Next returns a new random UUID string.
func (UUIDGenerator) Next() string {
	return uuid.NewString()
}

// NewIDGenerator returns the default identifier generator.
func NewIDGenerator() IDGenerator {
	return UUIDGenerator{}
}
