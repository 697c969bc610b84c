package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"finsync/internal/core"
	"finsync/internal/storage"
)

type createExpenseRequest struct {
	Amount      core.Money `json:"amount"`
	Tags        string     `json:"tags"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	CategoryID  int64      `json:"categoryId"`
}

// handleCreateExpense records a new expense for the authenticated user.
// Any owner field in the request body is ignored; ownership comes from
// the token alone.
func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := s.resolver.FromRequest(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(ctx, "Rejected expense payload", "error", err, "user_id", userID)
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	expense := core.Expense{
		UserID:      userID,
		Amount:      req.Amount,
		Tags:        req.Tags,
		Description: req.Description,
		Date:        req.Date,
		CategoryID:  req.CategoryID,
	}
	if err := expense.Validate(); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.store.InsertExpense(ctx, expense)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to save expense", "error", err, "user_id", userID)
		respondMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	if s.events != nil {
		if err := s.events.PublishExpenseCreated(ctx, id, userID); err != nil {
			slog.WarnContext(ctx, "Failed to publish expense event", "error", err, "expense_id", id)
		}
	}

	respondMessage(w, http.StatusOK, "Expense added.")
}

// handleListExpenses returns the caller's expenses with category names,
// most recent first.
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := s.resolver.FromRequest(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	views, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list expenses", "error", err, "user_id", userID)
		respondMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	respondJSON(w, http.StatusOK, views)
}

// handleDeleteExpense removes one of the caller's expenses. A well
// formed id owned by someone else and a nonexistent id are
// indistinguishable in the response.
func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := s.resolver.FromRequest(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	expenseID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Expense not found.")
		return
	}

	if err := s.store.DeleteByUser(ctx, userID, expenseID); err != nil {
		if errors.Is(err, storage.ErrExpenseNotFound) {
			respondMessage(w, http.StatusNotFound, "Expense not found.")
			return
		}
		slog.ErrorContext(ctx, "Failed to delete expense", "error", err, "user_id", userID, "expense_id", expenseID)
		respondMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	if s.events != nil {
		if err := s.events.PublishExpenseDeleted(ctx, expenseID, userID); err != nil {
			slog.WarnContext(ctx, "Failed to publish expense event", "error", err, "expense_id", expenseID)
		}
	}

	respondMessage(w, http.StatusOK, "Expense deleted.")
}
