package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Verb identifies the SQL operation a [Query] descriptor performs.
type Verb string

// Supported query verbs.
const (
	VerbNone   Verb = ""
	VerbSelect Verb = "select"
	VerbInsert Verb = "insert"
	VerbUpdate Verb = "update"
	VerbDelete Verb = "delete"
)

// Query is an immutable, composed representation of a database operation
// prior to execution. It is produced by [TableBuilder.Build] and consumed by
// the [DB] gateway; nothing in this package executes a Query at build time.
//
// SQL uses PostgreSQL $n placeholders for every value; Args carries the bound
// values in placeholder order. Request-derived values therefore never appear
// in the query text itself.
type Query struct {
	// Table is the target table the descriptor was built against.
	Table string

	// Verb is the SQL operation of the descriptor.
	Verb Verb

	// SQL is the parameterised statement text.
	SQL string

	// Args holds the values bound to the statement's placeholders.
	Args []any
}

// TableBuilder composes [Query] descriptors against a single table fixed at
// construction time.
//
// Exactly one verb method (Select, Insert, Update, Delete) must be called
// before Build; Where is optional. Column lists are expected to be fixed,
// package-level enumerations — never derived from request input — while all
// values are bound through placeholders. Each Build call composes exactly one
// descriptor from the builder's current state.
type TableBuilder struct {
	table   string
	verb    Verb
	columns []string
	values  []any
	where   sq.Sqlizer
	err     error
}

// NewTableBuilder returns a builder bound to the given table.
func NewTableBuilder(table string) *TableBuilder {
	return &TableBuilder{table: table}
}

// nowExpr is the database-side timestamp expression used for updated_at
// maintenance. Passing it as an update value keeps clock authority in the
// database rather than the application.
func nowExpr() sq.Sqlizer {
	return sq.Expr("NOW()")
}

// Select sets the verb to SELECT over the given column list.
func (b *TableBuilder) Select(columns ...string) *TableBuilder {
	b.verb = VerbSelect
	b.columns = columns
	b.values = nil
	return b
}

// Insert sets the verb to INSERT with the given column and value lists.
// The two lists must be the same length; a mismatch is a programming error
// surfaced by Build.
func (b *TableBuilder) Insert(columns []string, values []any) *TableBuilder {
	b.verb = VerbInsert
	b.columns = columns
	b.values = values
	if len(columns) != len(values) {
		b.err = fmt.Errorf("%w: %d columns, %d values", ErrColumnValueMismatch, len(columns), len(values))
	}
	return b
}

// Update sets the verb to UPDATE with the given column and value lists.
// The two lists must be the same length; a mismatch is a programming error
// surfaced by Build.
func (b *TableBuilder) Update(columns []string, values []any) *TableBuilder {
	b.verb = VerbUpdate
	b.columns = columns
	b.values = values
	if len(columns) != len(values) {
		b.err = fmt.Errorf("%w: %d columns, %d values", ErrColumnValueMismatch, len(columns), len(values))
	}
	return b
}

// Delete sets the verb to DELETE.
func (b *TableBuilder) Delete() *TableBuilder {
	b.verb = VerbDelete
	b.columns = nil
	b.values = nil
	return b
}

// Where sets the predicate for the descriptor. The predicate uses ?
// placeholders which Build rewrites to $n; args carries the bound values.
func (b *TableBuilder) Where(pred string, args ...any) *TableBuilder {
	b.where = sq.Expr(pred, args...)
	return b
}

// Build composes the descriptor from the builder's current state.
//
// Calling Build without a verb set, or after a column/value length mismatch,
// returns an error wrapping [ErrVerbNotSet] or [ErrColumnValueMismatch]: both
// are programming errors and are never mapped to user-facing responses.
func (b *TableBuilder) Build() (Query, error) {
	if b.err != nil {
		return Query{}, b.err
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	var (
		sqlText string
		args    []any
		err     error
	)

	switch b.verb {
	case VerbSelect:
		builder := psql.Select(b.columns...).From(b.table)
		if b.where != nil {
			builder = builder.Where(b.where)
		}
		sqlText, args, err = builder.ToSql()

	case VerbInsert:
		sqlText, args, err = psql.Insert(b.table).
			Columns(b.columns...).
			Values(b.values...).
			ToSql()

	case VerbUpdate:
		builder := psql.Update(b.table)
		for i, column := range b.columns {
			builder = builder.Set(column, b.values[i])
		}
		if b.where != nil {
			builder = builder.Where(b.where)
		}
		sqlText, args, err = builder.ToSql()

	case VerbDelete:
		builder := psql.Delete(b.table)
		if b.where != nil {
			builder = builder.Where(b.where)
		}
		sqlText, args, err = builder.ToSql()

	default:
		return Query{}, ErrVerbNotSet
	}

	if err != nil {
		return Query{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return Query{
		Table: b.table,
		Verb:  b.verb,
		SQL:   sqlText,
		Args:  args,
	}, nil
}
