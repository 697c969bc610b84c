// Package storage is the expense store adapter: it translates the
// domain operations (insert, list-by-owner, delete-by-owner-and-id)
// into SQLite statements. Every read and delete is scoped by the owning
// user id; the join with categories exists only to enrich the list
// projection with the category name.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"finsync/internal/core"

	_ "modernc.org/sqlite"
)

// ErrExpenseNotFound is returned by DeleteByUser when no row matches
// both the owner and the expense id. It does not distinguish "does not
// exist" from "owned by someone else".
var ErrExpenseNotFound = errors.New("expense not found")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite locks the whole file on write; a single connection avoids
	// SQLITE_BUSY under concurrent handlers and keeps the pragma below
	// in effect for every statement.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// InsertExpense persists a new expense and returns the store-assigned
// id. The caller is responsible for validation and for binding UserID
// from the resolved identity. The date is stored in UTC so the list
// ordering compares instants, not wall-clock strings.
func (r *SQLiteRepository) InsertExpense(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (user_id, amount_cents, tags, description, date, category_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.UserID, e.Amount.Cents, e.Tags, e.Description, e.Date.UTC(), e.CategoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("expense insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"expense_id", id,
		"user_id", e.UserID,
		"amount_cents", e.Amount.Cents,
		"category_id", e.CategoryID)

	return id, nil
}

// ListByUser returns every expense owned by userID, joined with the
// category name, most recent date first. Expenses sharing a date are
// ordered by descending expense id (newest insert first) so the result
// is deterministic. A user with no expenses gets an empty slice.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]core.ExpenseView, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT e.expense_id, e.amount_cents, e.tags, e.description, e.date, c.category_name
		 FROM expenses e
		 JOIN categories c ON c.category_id = e.category_id
		 WHERE e.user_id = ?
		 ORDER BY e.date DESC, e.expense_id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	views := make([]core.ExpenseView, 0)
	for rows.Next() {
		var v core.ExpenseView
		if err := rows.Scan(&v.ExpenseID, &v.Amount.Cents, &v.Tags, &v.Description, &v.Date, &v.CategoryName); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}

	return views, nil
}

// DeleteByUser removes the expense matching both userID and expenseID.
// Returns ErrExpenseNotFound when no such row exists.
func (r *SQLiteRepository) DeleteByUser(ctx context.Context, userID, expenseID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE expense_id = ? AND user_id = ?",
		expenseID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense rows affected: %w", err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	slog.InfoContext(ctx, "Expense deleted", "expense_id", expenseID, "user_id", userID)
	return nil
}

// GetCategory retrieves a category by id.
func (r *SQLiteRepository) GetCategory(ctx context.Context, categoryID int64) (*core.Category, error) {
	var c core.Category
	err := r.db.QueryRowContext(ctx,
		"SELECT category_id, category_name FROM categories WHERE category_id = ?",
		categoryID,
	).Scan(&c.CategoryID, &c.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// InsertCategory adds a category and returns its id. Category lifecycle
// lives outside the expense endpoints; the mkcategory command uses this
// to extend the seeded set.
func (r *SQLiteRepository) InsertCategory(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (category_name) VALUES (?)", name,
	)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("category insert id: %w", err)
	}
	return id, nil
}

// CountExpenses returns the total number of expense rows across all
// users.
func (r *SQLiteRepository) CountExpenses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM expenses").Scan(&count); err != nil {
		return 0, fmt.Errorf("count expenses: %w", err)
	}
	return count, nil
}
