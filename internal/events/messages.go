package events

import (
	"encoding/json"
	"time"
)

const (
	EventExpenseCreated = "expense.created"
	EventExpenseDeleted = "expense.deleted"
)

// ExpenseEvent is the audit record published after a successful expense
// mutation. It carries ids only; consumers that need the full row fetch
// it from the store.
type ExpenseEvent struct {
	Event     string    `json:"event"`
	ExpenseID int64     `json:"expenseId"`
	UserID    int64     `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExpenseEvent(event string, expenseID, userID int64) *ExpenseEvent {
	return &ExpenseEvent{
		Event:     event,
		ExpenseID: expenseID,
		UserID:    userID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ExpenseEventFromJSON creates an event from JSON bytes.
func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var e ExpenseEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
