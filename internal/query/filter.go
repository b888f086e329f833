package query

import (
	"strconv"
	"strings"

	"bespokedbikes/internal/utils"

	"github.com/shopspring/decimal"
)

// Op is a filter operator without its case-insensitive marker.
type Op string

const (
	OpEqual          Op = "=="
	OpNotEqual       Op = "!="
	OpGreater        Op = ">"
	OpLess           Op = "<"
	OpGreaterOrEqual Op = ">="
	OpLessOrEqual    Op = "<="
	OpContains       Op = "@="
	OpStartsWith     Op = "_="
	OpEndsWith       Op = "_-="
	OpNotContains    Op = "!@="
	OpNotStartsWith  Op = "!_="
	OpNotEndsWith    Op = "!_-="
)

const foldMarker = "*"

// operatorTokens is ordered so that the longest token at a position wins.
var operatorTokens = []string{
	"!_-=*", "!@=*", "!_=*", "_-=*", "!=*", "==*", "@=*", "_=*",
	"!_-=", "!@=", "!_=", "_-=", "==", "!=", ">=", "<=", "@=", "_=", ">", "<",
}

func (o Op) isText() bool {
	switch o {
	case OpContains, OpStartsWith, OpEndsWith, OpNotContains, OpNotStartsWith, OpNotEndsWith:
		return true
	}
	return false
}

func (o Op) sql() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "<>"
	case OpGreater, OpLess, OpGreaterOrEqual, OpLessOrEqual:
		return string(o)
	case OpContains, OpStartsWith, OpEndsWith:
		return "LIKE"
	case OpNotContains, OpNotStartsWith, OpNotEndsWith:
		return "NOT LIKE"
	}
	return ""
}

// Condition is one parsed clause: any of Fields compared by Op against any of Values.
type Condition struct {
	Fields          []Field
	Op              Op
	CaseInsensitive bool
	Values          []string
}

// Filter is a conjunction of conditions.
type Filter []Condition

// ParseFilter reads a filter expression such as
// "FirstName == bravo, (City|State)@=*port, SaleDate >= 01/02/2024".
// Clauses are separated by ',' or ';'; clauses that cannot be used are dropped.
func ParseFilter(expr string, fields Fields) Filter {
	out := Filter{}
	for _, clause := range utils.SplitEscaped(expr, ',', ';') {
		cond, ok := parseClause(clause, fields)
		if ok {
			out = append(out, cond)
		}
	}
	return out
}

func parseClause(clause string, fields Fields) (Condition, bool) {
	idx, token := findOperator(clause)
	if idx <= 0 {
		return Condition{}, false
	}

	namePart := strings.TrimSpace(clause[:idx])
	valuePart := strings.TrimSpace(clause[idx+len(token):])

	cond := Condition{
		Op:              Op(strings.TrimSuffix(token, foldMarker)),
		CaseInsensitive: strings.HasSuffix(token, foldMarker),
	}

	if strings.HasPrefix(namePart, "(") && strings.HasSuffix(namePart, ")") {
		namePart = namePart[1 : len(namePart)-1]
	}
	for _, name := range utils.SplitEscaped(namePart, '|') {
		f, ok := fields.filterable(name)
		if !ok {
			continue
		}
		if cond.Op.isText() && f.Kind != String {
			continue
		}
		cond.Fields = append(cond.Fields, f)
	}
	if len(cond.Fields) == 0 {
		return Condition{}, false
	}

	cond.Values = utils.SplitEscaped(valuePart, '|')
	if len(cond.Values) == 0 {
		return Condition{}, false
	}
	return cond, true
}

func findOperator(clause string) (int, string) {
	for i := 0; i < len(clause); i++ {
		for _, tok := range operatorTokens {
			if strings.HasPrefix(clause[i:], tok) {
				return i, tok
			}
		}
	}
	return -1, ""
}

// Where renders the filter as a SQL boolean expression with '?' placeholders.
// An empty filter renders as "".
func (f Filter) Where() (string, []any) {
	parts := []string{}
	args := []any{}
	for _, cond := range f {
		sql, condArgs, ok := cond.render()
		if !ok {
			continue
		}
		parts = append(parts, sql)
		args = append(args, condArgs...)
	}
	return strings.Join(parts, " AND "), args
}

func (c Condition) render() (string, []any, bool) {
	atoms := []string{}
	args := []any{}
	for _, f := range c.Fields {
		for _, v := range c.Values {
			sql, atomArgs, ok := renderAtom(f, c.Op, c.CaseInsensitive, v)
			if !ok {
				continue
			}
			atoms = append(atoms, sql)
			args = append(args, atomArgs...)
		}
	}
	switch len(atoms) {
	case 0:
		return "", nil, false
	case 1:
		return atoms[0], args, true
	default:
		return "(" + strings.Join(atoms, " OR ") + ")", args, true
	}
}

func renderAtom(f Field, op Op, fold bool, raw string) (string, []any, bool) {
	if strings.EqualFold(raw, "null") && f.Nullable {
		switch op {
		case OpEqual:
			return f.Column + " IS NULL", nil, true
		case OpNotEqual:
			return f.Column + " IS NOT NULL", nil, true
		}
	}

	switch f.Kind {
	case String:
		return renderString(f, op, fold, raw)
	case Int:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || op.isText() {
			return "", nil, false
		}
		return f.Column + " " + op.sql() + " ?", []any{n}, true
	case Decimal:
		d, err := decimal.NewFromString(raw)
		if err != nil || op.isText() {
			return "", nil, false
		}
		return f.Column + " " + op.sql() + " ?", []any{d.String()}, true
	case Date:
		t, dateOnly, err := utils.ParseDateLiteral(raw)
		if err != nil || op.isText() {
			return "", nil, false
		}
		if dateOnly {
			return "DATE(" + f.Column + ") " + op.sql() + " ?", []any{t.Format(utils.LayoutDate)}, true
		}
		return f.Column + " " + op.sql() + " ?", []any{t}, true
	}
	return "", nil, false
}

func renderString(f Field, op Op, fold bool, raw string) (string, []any, bool) {
	var arg string
	switch op {
	case OpContains, OpNotContains:
		arg = "%" + escapeLike(raw) + "%"
	case OpStartsWith, OpNotStartsWith:
		arg = escapeLike(raw) + "%"
	case OpEndsWith, OpNotEndsWith:
		arg = "%" + escapeLike(raw)
	default:
		arg = raw
	}

	if fold {
		return "LOWER(" + f.Column + ") " + op.sql() + " LOWER(?)", []any{arg}, true
	}
	// BINARY forces byte comparison under the default case-insensitive collation.
	return "BINARY " + f.Column + " " + op.sql() + " ?", []any{arg}, true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
