package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type join struct {
	kind  string
	table string
	on    string
	args  []any
}

type SelectBuilder struct {
	distinct bool
	columns  []string
	table    string
	joins    []join
	where    []Condition
	groupBy  []string
	having   []Condition
	orderBy  []string
	limit    int
	offset   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Join adds an INNER JOIN; ? placeholders in on are bound to args.
func (b *SelectBuilder) Join(table, on string, args ...any) *SelectBuilder {
	b.joins = append(b.joins, join{kind: "JOIN", table: table, on: on, args: args})
	return b
}

func (b *SelectBuilder) LeftJoin(table, on string, args ...any) *SelectBuilder {
	b.joins = append(b.joins, join{kind: "LEFT JOIN", table: table, on: on, args: args})
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) Having(conditions ...Condition) *SelectBuilder {
	b.having = append(b.having, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = offset
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var buf strings.Builder
	buf.WriteString("SELECT ")
	if b.distinct {
		buf.WriteString("DISTINCT ")
	}
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)

	args := make([]any, 0, len(b.where))
	argIndex := 1
	for _, j := range b.joins {
		buf.WriteByte(' ')
		buf.WriteString(j.kind)
		buf.WriteByte(' ')
		buf.WriteString(j.table)
		buf.WriteString(" ON ")
		buf.WriteString(rewritePlaceholders(j.on, j.args, &args, &argIndex))
	}
	appendWhereClause(&buf, b.where, &args, &argIndex)
	if len(b.groupBy) > 0 {
		buf.WriteString(" GROUP BY ")
		buf.WriteString(strings.Join(b.groupBy, ", "))
	}
	if len(b.having) > 0 {
		buf.WriteString(" HAVING ")
		for i, c := range b.having {
			if i > 0 {
				buf.WriteString(" AND ")
			}
			c.appendSQL(&buf, &args, &argIndex)
		}
	}
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}
	if b.offset > 0 {
		buf.WriteString(" OFFSET ")
		buf.WriteString(strconv.Itoa(b.offset))
	}

	return buf.String(), args, nil
}
