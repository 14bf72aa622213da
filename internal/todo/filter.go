package todo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilter is returned by ParseFilter for unknown names.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter is a named predicate selecting which tasks are shown.
type Filter string

const (
	FilterAll        Filter = "All"
	FilterCompleted  Filter = "Completed"
	FilterIncomplete Filter = "Incomplete"
)

// Filters returns the filter names in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterCompleted, FilterIncomplete}
}

// ParseFilter parses a filter name case-insensitively. Empty means All.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "incomplete", "todo", "open":
		return FilterIncomplete, nil
	default:
		return "", fmt.Errorf("%w %q, must be one of: All, Completed, Incomplete", ErrInvalidFilter, s)
	}
}

// Match reports whether t is shown under f. Unknown filters match everything.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterIncomplete:
		return !t.Completed
	default:
		return true
	}
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	all := Filters()
	for i, candidate := range all {
		if candidate == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// CountLabel formats the number of visible tasks.
func CountLabel(n int) string {
	return fmt.Sprintf("%d tasks", n)
}
