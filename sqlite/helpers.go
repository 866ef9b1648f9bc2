package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 decodes a timestamp column; field names the column in the
// returned error.
func parseRFC3339(value, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET to a snapshot query. Zero values
// leave the query unbounded.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit <= 0 && offset > 0 {
		// SQLite only accepts OFFSET after a LIMIT.
		query.WriteString(" LIMIT -1")
	}
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
