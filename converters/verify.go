package converters

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/darianmavgo/csvtosql/converters/common"

	_ "modernc.org/sqlite"
)

// Verify executes script against a fresh in-memory SQLite database and
// checks that every table holds as many rows as were loaded.
func Verify(ctx context.Context, script string, tables []*common.Table) error {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// An in-memory database lives per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("failed to execute generated SQL: %w", err)
	}

	for _, t := range tables {
		var count int
		query := "SELECT COUNT(*) FROM " + common.QuoteIdent(t.Name, true)
		if err := db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return fmt.Errorf("failed to count rows in %s: %w", t.Name, err)
		}
		if count != len(t.Rows) {
			return fmt.Errorf("table %s: got %d rows, want %d", t.Name, count, len(t.Rows))
		}
	}
	return nil
}
