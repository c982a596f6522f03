package model

import "time"

// MoneyEntry is a single spending record.
type MoneyEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Note      string    `json:"note,omitempty"`
}

// EntityID returns the unique identifier of the entry.
func (e MoneyEntry) EntityID() string {
	return e.ID
}

// EntityTime returns the creation timestamp of the entry.
func (e MoneyEntry) EntityTime() time.Time {
	return e.CreatedAt
}

// PaymentMethods returns the conventional payment method labels.
// Method is stored as free text; these are suggestions, not an enum.
func PaymentMethods() []string {
	return []string{"cash", "card", "transfer", "other"}
}

// NewMoneyEntry creates a spending record.
func NewMoneyEntry(amount float64, method, note string, at time.Time) MoneyEntry {
	return MoneyEntry{
		ID:        NewID(),
		CreatedAt: at,
		Amount:    amount,
		Method:    method,
		Note:      note,
	}
}
