package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
)

// psql builds PostgreSQL statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// patch accumulates the SET clauses of a partial update
type patch struct {
	b       squirrel.UpdateBuilder
	changed bool
}

func newPatch(table string) *patch {
	return &patch{b: psql.Update(table)}
}

// setIf adds column = *v when v is not nil
func setIf[T any](p *patch, column string, v *T) {
	if v == nil {
		return
	}
	p.b = p.b.Set(column, *v)
	p.changed = true
}

// collectRows scans every row with scan and closes rows
func collectRows[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// notFoundOr converts pgx.ErrNoRows into a not-found error for resource
func notFoundOr(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewResourceNotFoundError(resource + " not found")
	}
	return fmt.Errorf("error querying %s: %w", resource, err)
}

// escapeLike escapes LIKE wildcards so the term matches literally
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

func buildErr(what string, err error) error {
	return fmt.Errorf("failed to build %s query: %w", what, err)
}
