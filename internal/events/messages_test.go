package events

import (
	"testing"
	"time"
)

func TestNewExpenseEvent(t *testing.T) {
	event := NewExpenseEvent(EventExpenseCreated, 42, 7)

	if event.Event != EventExpenseCreated {
		t.Errorf("Event = %q, want %q", event.Event, EventExpenseCreated)
	}
	if event.ExpenseID != 42 {
		t.Errorf("ExpenseID = %d, want 42", event.ExpenseID)
	}
	if event.UserID != 7 {
		t.Errorf("UserID = %d, want 7", event.UserID)
	}
	if event.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(event.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestExpenseEvent_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	event := &ExpenseEvent{
		Event:     EventExpenseDeleted,
		ExpenseID: 42,
		UserID:    7,
		Timestamp: timestamp,
	}

	jsonBytes, err := event.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := ExpenseEventFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("ExpenseEventFromJSON() error = %v", err)
	}

	if parsed.Event != event.Event {
		t.Errorf("Parsed Event = %q, want %q", parsed.Event, event.Event)
	}
	if parsed.ExpenseID != event.ExpenseID {
		t.Errorf("Parsed ExpenseID = %d, want %d", parsed.ExpenseID, event.ExpenseID)
	}
	if parsed.UserID != event.UserID {
		t.Errorf("Parsed UserID = %d, want %d", parsed.UserID, event.UserID)
	}
	if !parsed.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, event.Timestamp)
	}
}

func TestExpenseEvent_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"expenseId": "not_a_number"}`)

	if _, err := ExpenseEventFromJSON(invalidJSON); err == nil {
		t.Error("ExpenseEventFromJSON() should fail with invalid JSON")
	}
}
