package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/helpers"
)

// profileColumns maps profile document fields to table columns, in insert order.
var profileColumns = []struct {
	field, column string
	zero          any
}{
	{models.ProfileFieldUsername, "username", ""},
	{models.ProfileFieldEmail, "email", ""},
	{models.ProfileFieldBudget, "budget", 0.0},
	{models.ProfileFieldLastBudgetMonth, "last_budget_month", nil},
	{models.ProfileFieldPreviousBudget, "previous_budget", 0.0},
}

// SQLiteStore keeps profiles and expenses in a local SQLite file. It serves
// the same operations as the Firestore stores and is meant for local runs and
// the CLI.
type SQLiteStore struct {
	db      *sql.DB
	timeout time.Duration
}

func NewSQLiteStore(dbPath string, timeout time.Duration) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, timeout: timeout}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Append(ctx context.Context, uid string, e models.Expense) (string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	id := uuid.NewString()
	query := sq.Insert("expenses").
		Columns("id", "uid", "name", "amount", "category", "timestamp").
		Values(id, uid, e.Name, e.Amount, string(e.Category), e.Timestamp)

	if _, err := query.RunWith(s.db).ExecContext(ctx); err != nil {
		return "", storeError("append expense", "failed to add expense", err)
	}
	return id, nil
}

func (s *SQLiteStore) QueryRange(ctx context.Context, uid string, startMs, endMs int64) ([]models.Expense, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	query := sq.Select("id", "name", "amount", "category", "timestamp").
		From("expenses").
		Where(sq.Eq{"uid": uid}).
		Where(sq.GtOrEq{"timestamp": startMs}).
		OrderBy("timestamp ASC")
	if endMs > 0 {
		query = query.Where(sq.LtOrEq{"timestamp": endMs})
	}

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, storeError("query expenses", "failed to query expenses", err)
	}
	defer rows.Close()

	var out []models.Expense
	for rows.Next() {
		var (
			e        models.Expense
			category string
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &category, &e.Timestamp); err != nil {
			return nil, storeError("query expenses", "failed to scan expense", err)
		}
		e.Category = models.Category(category)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("query expenses", "failed to read expenses", err)
	}
	return out, nil
}

func (s *SQLiteStore) GetProfile(ctx context.Context, uid string) (*models.Profile, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	query := sq.Select("username", "email", "budget", "last_budget_month", "previous_budget").
		From("profiles").
		Where(sq.Eq{"uid": uid})

	var (
		p     models.Profile
		month sql.NullInt64
	)
	err := query.RunWith(s.db).QueryRowContext(ctx).
		Scan(&p.Username, &p.Email, &p.Budget, &month, &p.PreviousBudget)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("get profile", "failed to get profile", err)
	}
	if month.Valid {
		p.LastBudgetMonth = helpers.Ptr(int(month.Int64))
	}
	return &p, nil
}

// PutProfile upserts the profile row. Without merge, columns missing from
// fields are reset to their defaults, matching a whole-document replace.
func (s *SQLiteStore) PutProfile(ctx context.Context, uid string, fields map[string]any, merge bool) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	for k := range fields {
		if !knownProfileField(k) {
			return storeError("put profile", "failed to write profile", fmt.Errorf("unknown profile field %q", k))
		}
	}

	columns := []string{"uid"}
	values := []any{uid}
	var updates []string
	for _, c := range profileColumns {
		v, ok := fields[c.field]
		if !ok && merge {
			continue
		}
		if !ok {
			v = c.zero
		}
		columns = append(columns, c.column)
		values = append(values, sqliteValue(v))
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", c.column, c.column))
	}

	query := sq.Insert("profiles").Columns(columns...).Values(values...)
	if len(updates) > 0 {
		query = query.Suffix("ON CONFLICT(uid) DO UPDATE SET " + strings.Join(updates, ", "))
	} else {
		query = query.Suffix("ON CONFLICT(uid) DO NOTHING")
	}

	if _, err := query.RunWith(s.db).ExecContext(ctx); err != nil {
		return storeError("put profile", "failed to write profile", err)
	}
	return nil
}

func knownProfileField(field string) bool {
	for _, c := range profileColumns {
		if c.field == field {
			return true
		}
	}
	return false
}

// pointers are stored as their value or NULL
func sqliteValue(v any) any {
	switch t := v.(type) {
	case *int:
		if t == nil {
			return nil
		}
		return *t
	case models.Category:
		return string(t)
	default:
		return v
	}
}
