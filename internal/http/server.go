// Package http exposes the expense API over JSON. Every expense route
// resolves the caller's identity from the bearer token before touching
// the store; there is no way to reach a handler body without a user id.
package http

import (
	"context"
	"net/http"

	"finsync/internal/auth"
	"finsync/internal/core"
	"finsync/internal/middleware/trace"
	"finsync/internal/storage"
)

// ExpenseStore is the persistence surface the handlers need.
type ExpenseStore interface {
	InsertExpense(ctx context.Context, e core.Expense) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]core.ExpenseView, error)
	DeleteByUser(ctx context.Context, userID, expenseID int64) error
}

var _ ExpenseStore = (*storage.SQLiteRepository)(nil)

// EventPublisher emits audit events after successful mutations. A nil
// publisher disables events entirely.
type EventPublisher interface {
	PublishExpenseCreated(ctx context.Context, expenseID, userID int64) error
	PublishExpenseDeleted(ctx context.Context, expenseID, userID int64) error
}

type Server struct {
	http.Server
	store    ExpenseStore
	resolver *auth.Resolver
	events   EventPublisher
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server. publisher may be nil.
func NewServer(addr string, store ExpenseStore, resolver *auth.Resolver, publisher EventPublisher) *Server {
	mux := http.NewServeMux()

	s := &Server{
		store:    store,
		resolver: resolver,
		events:   publisher,
	}
	s.Server = http.Server{
		Addr:    addr,
		Handler: trace.Middleware(securityHeaders(mux)),
	}

	mux.HandleFunc("POST /expenses", s.handleCreateExpense)
	mux.HandleFunc("GET /expenses", s.handleListExpenses)
	mux.HandleFunc("DELETE /expenses/{id}", s.handleDeleteExpense)
	mux.HandleFunc("GET /healthz", handleHealth)

	return s
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// handleHealth performs a basic liveness check.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
