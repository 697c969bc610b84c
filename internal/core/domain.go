package core

import (
	"errors"
	"time"
)

type (
	// Expense is a single expense row owned by exactly one user.
	// UserID is never taken from client input; it is bound from the
	// resolved identity at creation and immutable afterwards.
	Expense struct {
		ExpenseID   int64
		UserID      int64
		Amount      Money
		Tags        string
		Description string
		Date        time.Time
		CategoryID  int64
	}

	// Category is referenced (not owned) by expenses. Its lifecycle is
	// managed outside this service; migrations seed a default set.
	Category struct {
		CategoryID   int64
		CategoryName string
	}

	// ExpenseView is the read-only list projection: an expense joined
	// with its category name. Recomputed per request, never stored.
	ExpenseView struct {
		ExpenseID    int64     `json:"expenseId"`
		Amount       Money     `json:"amount"`
		Tags         string    `json:"tags"`
		Description  string    `json:"description"`
		Date         time.Time `json:"date"`
		CategoryName string    `json:"categoryName"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrZeroDate        = errors.New("date is required")
	ErrInvalidCategory = errors.New("invalid category id")
)

// Validate checks the structural invariants required before insert.
// Amount is a signed decimal and tags/description are free-form, so
// only the date and category reference are constrained.
func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return ErrZeroDate
	}
	if e.CategoryID <= 0 {
		return ErrInvalidCategory
	}
	return nil
}
