package core

import (
	"errors"
	"testing"
	"time"
)

func TestExpense_Validate(t *testing.T) {
	valid := Expense{
		UserID:      7,
		Amount:      Money{Cents: 4250},
		Tags:        "food",
		Description: "lunch",
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CategoryID:  3,
	}

	tests := []struct {
		name    string
		mutate  func(*Expense)
		wantErr error
	}{
		{"valid", func(e *Expense) {}, nil},
		{"zero amount allowed", func(e *Expense) { e.Amount = Money{} }, nil},
		{"negative amount allowed", func(e *Expense) { e.Amount = Money{Cents: -100} }, nil},
		{"empty tags and description allowed", func(e *Expense) { e.Tags = ""; e.Description = "" }, nil},
		{"zero date", func(e *Expense) { e.Date = time.Time{} }, ErrZeroDate},
		{"zero category", func(e *Expense) { e.CategoryID = 0 }, ErrInvalidCategory},
		{"negative category", func(e *Expense) { e.CategoryID = -1 }, ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
