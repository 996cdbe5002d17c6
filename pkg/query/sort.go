package query

import "strings"

// SortField names a view field and its direction. NullsLast places NULL
// values after every other value regardless of direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
	NullsLast  bool   `json:"nulls_last,omitempty"`
}

// ParseSortFields parses a comma-separated sort expression such as
// "title,-published_at". A "-" prefix sorts descending.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	fields := make([]SortField, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")
		if field == "" {
			continue
		}

		fields = append(fields, SortField{Field: field, Descending: desc})
	}

	return fields
}
