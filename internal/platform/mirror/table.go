package mirror

import (
	"context"
	"fmt"
	"strings"

	"studyplan/internal/platform/sqldb"
)

// Scanner is the Scan method shared by *sql.Row and *sql.Rows.
type Scanner func(dest ...any) error

// TableSpec maps a record type onto a remote table with one column per
// field. Every table also carries user_id and position columns.
type TableSpec[T any] struct {
	Name    string
	Columns []string
	// ColumnTypes holds the SQL type of each column, in Columns order.
	ColumnTypes []string
	Values      func(T) []any
	Scan        func(Scanner) (T, error)
}

// Table is the remote copy of one collection for one user.
type Table[T any] struct {
	db     *sqldb.DB
	userID string
	spec   TableSpec[T]
}

func NewTable[T any](ctx context.Context, db *sqldb.DB, userID string, spec TableSpec[T]) (*Table[T], error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id is required for %s mirror", spec.Name)
	}
	if len(spec.Columns) != len(spec.ColumnTypes) {
		return nil, fmt.Errorf("%s: %d columns but %d column types", spec.Name, len(spec.Columns), len(spec.ColumnTypes))
	}
	table := &Table[T]{db: db, userID: userID, spec: spec}
	if err := table.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return table, nil
}

func (t *Table[T]) ensureSchema(ctx context.Context) error {
	defs := make([]string, 0, len(t.spec.Columns)+2)
	defs = append(defs, "user_id TEXT NOT NULL", "position INTEGER NOT NULL")
	for i, col := range t.spec.Columns {
		defs = append(defs, col+" "+t.spec.ColumnTypes[i])
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n)", t.spec.Name, strings.Join(defs, ",\n  "))
	if _, err := t.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create %s table: %w", t.spec.Name, err)
	}
	index := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_user_idx ON %s (user_id)", t.spec.Name, t.spec.Name)
	if _, err := t.db.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("create %s index: %w", t.spec.Name, err)
	}
	return nil
}

func (t *Table[T]) Load(ctx context.Context) ([]T, error) {
	query := t.db.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE user_id = ? ORDER BY position",
		strings.Join(t.spec.Columns, ", "), t.spec.Name))
	rows, err := t.db.QueryContext(ctx, query, t.userID)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", t.spec.Name, err)
	}
	defer func() { _ = rows.Close() }()
	out := []T{}
	for rows.Next() {
		item, err := t.spec.Scan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.spec.Name, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", t.spec.Name, err)
	}
	return out, nil
}

// Save replaces the user's rows: delete, then reinsert in array order, in
// one transaction.
func (t *Table[T]) Save(ctx context.Context, items []T) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", t.spec.Name, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, t.db.Rebind(fmt.Sprintf("DELETE FROM %s WHERE user_id = ?", t.spec.Name)), t.userID); err != nil {
		return fmt.Errorf("delete %s: %w", t.spec.Name, err)
	}
	cols := append([]string{"user_id", "position"}, t.spec.Columns...)
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	insert := t.db.Rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.spec.Name, strings.Join(cols, ", "), marks))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare %s insert: %w", t.spec.Name, err)
	}
	defer func() { _ = stmt.Close() }()
	for pos, item := range items {
		args := append([]any{t.userID, pos}, t.spec.Values(item)...)
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert %s: %w", t.spec.Name, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", t.spec.Name, err)
	}
	return nil
}
