// Package query builds parameterized PostgreSQL queries from a projection map.
package query

import (
	"fmt"
	"math"
	"strings"
)

// condition renders one WHERE clause. bind records an argument and returns
// its positional placeholder.
type condition func(bind func(arg any) string) string

// Builder composes SELECT and COUNT queries over one projection.
// Conditions are ANDed and numbered in the order they were added.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	orderBy     []SortField
	defaultSort SortField
	tiebreak    string
}

// NewBuilder creates a Builder for the given projection with a default sort field.
func NewBuilder(projection *ProjectionMap, defaultSort SortField) *Builder {
	return &Builder{
		projection:  projection,
		defaultSort: defaultSort,
	}
}

// BuildCount returns a COUNT(*) query with the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.buildWhere()
	return "SELECT COUNT(*) FROM " + b.projection.Table() + where, args
}

// BuildPage returns a SELECT with the current conditions, ordering, and a
// LIMIT/OFFSET window. Pages below 1 read the first page, and pages past
// the largest representable offset read that last window.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	where, args := b.buildWhere()
	pageSize = max(pageSize, 0)
	if pageSize > 0 && page > math.MaxInt/pageSize {
		page = math.MaxInt / pageSize
	}
	offset := max(page-1, 0) * pageSize

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		b.projection.Columns(), b.projection.Table(), where, b.buildOrderBy(), pageSize, offset,
	)
	return sql, args
}

// BuildSingle returns a SELECT for the record whose idField equals id.
// Other conditions are ignored.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(), b.projection.Table(), b.projection.Column(idField),
	)
	return sql, []any{id}
}

// OrderByFields sets the sort order. Fields the projection does not know
// are dropped, and an empty result falls back to the default sort.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.orderBy = b.orderBy[:0]
	for _, f := range fields {
		if b.projection.Has(f.Field) {
			b.orderBy = append(b.orderBy, f)
		}
	}
	return b
}

// Tiebreak appends field ascending to every ORDER BY that does not already
// sort on it, so rows with equal sort keys keep a stable page order.
func (b *Builder) Tiebreak(field string) *Builder {
	if b.projection.Has(field) {
		b.tiebreak = field
	}
	return b
}

// WhereEqualsString adds an equality condition. Nil or empty values are ignored.
func (b *Builder) WhereEqualsString(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	return b.WhereEquals(field, *value)
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	col := b.projection.Column(field)
	return b.where(func(bind func(any) string) string {
		return col + " = " + bind(value)
	})
}

// WhereContains adds a case-insensitive substring match. LIKE wildcards in
// value match literally. Nil or empty values are ignored.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	col := b.projection.Column(field)
	pattern := containsPattern(*value)
	return b.where(func(bind func(any) string) string {
		return col + " ILIKE " + bind(pattern)
	})
}

// WhereIn adds an IN condition for multiple values. Empty slices are ignored.
func (b *Builder) WhereIn(field string, values []any) *Builder {
	if len(values) == 0 {
		return b
	}
	col := b.projection.Column(field)
	return b.where(func(bind func(any) string) string {
		placeholders := make([]string, len(values))
		for i, v := range values {
			placeholders[i] = bind(v)
		}
		return col + " IN (" + strings.Join(placeholders, ", ") + ")"
	})
}

// WhereSearch matches every whitespace-separated term of search against any
// of fields, case-insensitively. Each term adds one OR group. Nil or blank
// searches are ignored.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || len(fields) == 0 {
		return b
	}

	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = b.projection.Column(f)
	}

	for _, term := range strings.Fields(*search) {
		pattern := containsPattern(term)
		b.where(func(bind func(any) string) string {
			clauses := make([]string, len(cols))
			for i, col := range cols {
				clauses[i] = col + " ILIKE " + bind(pattern)
			}
			return "(" + strings.Join(clauses, " OR ") + ")"
		})
	}
	return b
}

func (b *Builder) where(c condition) *Builder {
	b.conditions = append(b.conditions, c)
	return b
}

func (b *Builder) buildOrderBy() string {
	fields := b.orderBy
	if len(fields) == 0 {
		fields = []SortField{b.defaultSort}
	}

	parts := make([]string, 0, len(fields)+1)
	seen := false
	for _, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		if f.NullsLast {
			dir += " NULLS LAST"
		}
		parts = append(parts, b.projection.Column(f.Field)+" "+dir)
		seen = seen || f.Field == b.tiebreak
	}
	if b.tiebreak != "" && !seen {
		parts = append(parts, b.projection.Column(b.tiebreak)+" ASC")
	}

	return " ORDER BY " + strings.Join(parts, ", ")
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	var args []any
	bind := func(arg any) string {
		args = append(args, arg)
		return fmt.Sprintf("$%d", len(args))
	}

	clauses := make([]string, len(b.conditions))
	for i, c := range b.conditions {
		clauses[i] = c(bind)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps s for an ILIKE substring match, escaping wildcards
// with PostgreSQL's default backslash escape.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
