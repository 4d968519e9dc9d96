package services

import (
	"sort"

	"github.com/reglet-dev/roster/internal/domain/entities"
)

// SortByName returns a copy of records ordered by name ascending.
// Names compare byte-wise, which for UTF-8 is code-point order; equal names
// keep their input order. The input slice is not modified.
func SortByName(records []entities.Record) []entities.Record {
	sorted := make([]entities.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})

	return sorted
}
