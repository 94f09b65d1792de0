package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/queryspec/queryspec-go/entity"
	"github.com/queryspec/queryspec-go/predicate"
)

func usersEntity() entity.Entity {
	return entity.Entity{
		Name: "users",
		Schema: arrow.NewSchema([]arrow.Field{
			{Name: "id", Type: arrow.PrimitiveTypes.Int64},
			{Name: "name", Type: arrow.BinaryTypes.String},
			{Name: "status", Type: arrow.BinaryTypes.String},
			{Name: "age", Type: arrow.PrimitiveTypes.Int32},
		}, nil),
	}
}

func strColumn(name string) predicate.Column {
	return predicate.Column{Segments: []string{name}, Type: arrow.BinaryTypes.String}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, usersEntity(), nil); err == nil {
		t.Error("expected error for nil db")
	}

	db := openTestDB(t)
	if _, err := New(db, entity.Entity{}, nil); err == nil {
		t.Error("expected error for unnamed entity")
	}
	if _, err := New(db, usersEntity(), nil); err != nil {
		t.Errorf("New failed: %v", err)
	}
}

func TestSelectQuery(t *testing.T) {
	repo := &Repository{
		entity:  usersEntity(),
		encoder: predicate.NewDuckDBEncoder(nil),
	}
	active := &predicate.Comparison{
		Column: strColumn("status"),
		Op:     predicate.CompareEqual,
		Value:  "ACTIVE",
	}

	tests := []struct {
		name     string
		pred     predicate.Predicate
		page     *Page
		expected string
	}{
		{
			"match all without page",
			predicate.Everything(),
			nil,
			`SELECT * FROM "users"`,
		},
		{
			"with predicate",
			active,
			nil,
			`SELECT * FROM "users" WHERE status = 'ACTIVE'`,
		},
		{
			"with sort and pagination",
			active,
			&Page{Limit: 10, Offset: 20, Sort: []Order{{Field: "name"}, {Field: "age", Descending: true}}},
			`SELECT * FROM "users" WHERE status = 'ACTIVE' ORDER BY "name", "age" DESC LIMIT 10 OFFSET 20`,
		},
		{
			"zero limit omitted",
			predicate.Everything(),
			&Page{Sort: []Order{{Field: "id"}}},
			`SELECT * FROM "users" ORDER BY "id"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := repo.selectQuery("*", tt.pred, tt.page)
			if err != nil {
				t.Fatalf("selectQuery failed: %v", err)
			}
			if query != tt.expected {
				t.Errorf("expected:\n %s\ngot:\n %s", tt.expected, query)
			}
		})
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("failed to open DuckDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedUsers(t *testing.T, db *sql.DB) {
	t.Helper()
	statements := []string{
		`CREATE TABLE users (id BIGINT, name VARCHAR, status VARCHAR, age INTEGER)`,
		`INSERT INTO users VALUES
			(1, 'Alice', 'ACTIVE', 34),
			(2, 'Bob', 'ACTIVE', 28),
			(3, 'Carol', 'INACTIVE', 45),
			(4, 'Dave', 'PENDING', 19)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to seed users: %v", err)
		}
	}
}

func TestFindAgainstDuckDB(t *testing.T) {
	db := openTestDB(t)
	seedUsers(t, db)

	repo, err := New(db, usersEntity(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	active := &predicate.Comparison{
		Column: strColumn("status"),
		Op:     predicate.CompareEqual,
		Value:  "ACTIVE",
	}

	rows, err := repo.Find(ctx, active)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row["status"] != "ACTIVE" {
			t.Errorf("unexpected row: %+v", row)
		}
	}

	// Match-all predicate returns the full table.
	rows, err = repo.Find(ctx, predicate.Everything())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(rows) != 4 {
		t.Errorf("expected 4 rows, got %d", len(rows))
	}
}

func TestFindPageAgainstDuckDB(t *testing.T) {
	db := openTestDB(t)
	seedUsers(t, db)

	repo, err := New(db, usersEntity(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	rows, err := repo.FindPage(context.Background(), predicate.Everything(), Page{
		Limit:  2,
		Offset: 1,
		Sort:   []Order{{Field: "age", Descending: true}},
	})
	if err != nil {
		t.Fatalf("FindPage failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Ordered by age DESC the table is Carol(45), Alice(34), Bob(28),
	// Dave(19); offset 1 starts at Alice.
	if rows[0]["name"] != "Alice" || rows[1]["name"] != "Bob" {
		t.Errorf("unexpected page: %+v", rows)
	}
}

func TestCountAgainstDuckDB(t *testing.T) {
	db := openTestDB(t)
	seedUsers(t, db)

	repo, err := New(db, usersEntity(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	count, err := repo.Count(ctx, predicate.Everything())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4, got %d", count)
	}

	count, err = repo.Count(ctx, &predicate.Nullity{Column: strColumn("status")})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0, got %d", count)
	}
}
