// Package repository is the execution layer: it accepts predicates produced
// by the engine and runs them against a SQL database through database/sql.
//
// The repository never inspects predicate structure - it only embeds the
// encoded WHERE clause into a SELECT. That keeps the construction/execution
// boundary intact: swapping the storage technology means swapping the
// Encoder and the driver, not the engine.
//
// The tests and examples use DuckDB (github.com/duckdb/duckdb-go/v2), which
// registers the "duckdb" driver:
//
//	db, err := sql.Open("duckdb", "")
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/queryspec/queryspec-go/entity"
	"github.com/queryspec/queryspec-go/predicate"
)

// Order is one ORDER BY term.
type Order struct {
	Field      string
	Descending bool
}

// Page describes pagination and ordering for FindPage.
// A zero Limit means no LIMIT clause.
type Page struct {
	Limit  int
	Offset int
	Sort   []Order
}

// Repository executes predicates against one entity's table.
// Safe for concurrent use; *sql.DB manages its own pooling.
type Repository struct {
	db      *sql.DB
	entity  entity.Entity
	encoder predicate.Encoder
}

// New creates a repository for the given entity.
// If enc is nil, a DuckDB encoder with default options is used.
func New(db *sql.DB, ent entity.Entity, enc predicate.Encoder) (*Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("repository: db is required")
	}
	if ent.Name == "" {
		return nil, fmt.Errorf("repository: entity name is required")
	}
	if enc == nil {
		enc = predicate.NewDuckDBEncoder(nil)
	}
	return &Repository{db: db, entity: ent, encoder: enc}, nil
}

// Find returns all rows matching the predicate, as column-name keyed maps.
func (r *Repository) Find(ctx context.Context, pred predicate.Predicate) ([]map[string]any, error) {
	return r.FindPage(ctx, pred, Page{})
}

// FindPage returns the rows matching the predicate, ordered and paginated
// per page.
func (r *Repository) FindPage(ctx context.Context, pred predicate.Predicate, page Page) ([]map[string]any, error) {
	query, err := r.selectQuery("*", pred, &page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: query %s: %w", r.entity.Name, err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// Count returns the number of rows matching the predicate.
func (r *Repository) Count(ctx context.Context, pred predicate.Predicate) (int64, error) {
	query, err := r.selectQuery("count(*)", pred, nil)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: count %s: %w", r.entity.Name, err)
	}
	return count, nil
}

// selectQuery renders the SELECT statement for the predicate.
func (r *Repository) selectQuery(projection string, pred predicate.Predicate, page *Page) (string, error) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(projection)
	sb.WriteString(" FROM ")
	sb.WriteString(quoteIdent(r.entity.Name))

	where, err := r.encoder.EncodeWhere(pred)
	if err != nil {
		return "", fmt.Errorf("repository: encode predicate: %w", err)
	}
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	if page != nil {
		if len(page.Sort) > 0 {
			terms := make([]string, len(page.Sort))
			for i, o := range page.Sort {
				term := quoteIdent(o.Field)
				if o.Descending {
					term += " DESC"
				}
				terms[i] = term
			}
			sb.WriteString(" ORDER BY ")
			sb.WriteString(strings.Join(terms, ", "))
		}
		if page.Limit > 0 {
			sb.WriteString(" LIMIT ")
			sb.WriteString(strconv.Itoa(page.Limit))
		}
		if page.Offset > 0 {
			sb.WriteString(" OFFSET ")
			sb.WriteString(strconv.Itoa(page.Offset))
		}
	}

	return sb.String(), nil
}

// scanRows reads all rows into column-name keyed maps.
func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("repository: columns: %w", err)
	}

	var result []map[string]any
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("repository: scan: %w", err)
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: rows: %w", err)
	}
	return result, nil
}

// quoteIdent quotes a table or column identifier with double quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
