package ledger

import (
	"github.com/mis-finanzas/backend/internal/domain/entity"
)

// Normalize returns a copy of entries in which every entry has an
// identifier. Entries that already carry one are returned unchanged;
// the rest get a fresh identifier from gen. The input slice is never
// mutated and order is preserved.
func Normalize(entries []entity.HistoryEntry, gen IDGenerator) []entity.HistoryEntry {
	normalized := make([]entity.HistoryEntry, len(entries))
	for i, entry := range entries {
		if entry.ID == "" {
			entry.ID = gen.Next()
		}
		normalized[i] = entry
	}
	return normalized
}

// Deduplicate returns entries with duplicate identifiers removed.
// Tie-break: the first occurrence of an identifier wins; later entries
// with the same identifier are dropped. Order is preserved and the
// input is never mutated. Applying Deduplicate twice yields the same
// result as applying it once.
func Deduplicate(entries []entity.HistoryEntry) []entity.HistoryEntry {
	seen := make(map[string]struct{}, len(entries))
	deduplicated := make([]entity.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		seen[entry.ID] = struct{}{}
		deduplicated = append(deduplicated, entry)
	}
	return deduplicated
}
