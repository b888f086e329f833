package query

import (
	"strings"

	"bespokedbikes/internal/utils"
)

// SortKey orders by one field.
type SortKey struct {
	Field Field
	Desc  bool
}

// Sort is an ordered list of keys; earlier keys take precedence.
type Sort []SortKey

// ParseSort reads a sort expression such as "LastName,-StartDate,City desc".
// A leading '-' or a trailing "desc" marks a key descending. Unknown,
// non-sortable and repeated fields are dropped.
func ParseSort(expr string, fields Fields) Sort {
	out := Sort{}
	seen := map[string]bool{}
	for _, term := range utils.SplitEscaped(expr, ',') {
		desc := false
		if strings.HasPrefix(term, "-") {
			desc = true
			term = strings.TrimSpace(term[1:])
		}
		if words := strings.Fields(term); len(words) == 2 {
			switch strings.ToLower(words[1]) {
			case "desc":
				desc = true
				term = words[0]
			case "asc":
				term = words[0]
			}
		}

		f, ok := fields.sortable(term)
		if !ok || seen[f.Column] {
			continue
		}
		seen[f.Column] = true
		out = append(out, SortKey{Field: f, Desc: desc})
	}
	return out
}

// OrderBy renders the keys followed by tiebreak ascending, so rows that compare
// equal on every key keep their insertion order.
func (s Sort) OrderBy(tiebreak string) string {
	parts := make([]string, 0, len(s)+1)
	hasTiebreak := false
	for _, k := range s {
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		if k.Field.Column == tiebreak {
			hasTiebreak = true
		}
		parts = append(parts, k.Field.Column+" "+dir)
	}
	if tiebreak != "" && !hasTiebreak {
		parts = append(parts, tiebreak+" ASC")
	}
	return strings.Join(parts, ", ")
}
