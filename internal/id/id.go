// Package id formats and parses journal entry identifiers. An entry ID is
// "YYYY-MM-NNN"; each posting row of the entry carries the ID plus a
// lowercase letter suffix ("2025-01-003a", "2025-01-003b", ...).
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns an entry ID like "2025-01-001".
func FormatEntryID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// FormatPostingID returns a posting row ID like "2025-01-001a"
// (posting 0='a', 1='b', etc.).
func FormatPostingID(entryID string, posting int) string {
	return entryID + string(rune('a'+posting))
}

// ParseEntryID parses "2025-01-001" (with or without a posting suffix) into
// year, month, seq.
func ParseEntryID(id string) (year, month, seq int, err error) {
	base := BaseID(id)

	parts := strings.SplitN(base, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in entry ID %q: %w", id, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in entry ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}

	return year, month, seq, nil
}

// BaseID strips the posting suffix from a row ID.
// "2025-01-001a" -> "2025-01-001"
func BaseID(rowID string) string {
	i := len(rowID)
	for i > 0 && rowID[i-1] >= 'a' && rowID[i-1] <= 'z' {
		i--
	}
	return rowID[:i]
}
