package domain

import (
	"time"

	"github.com/google/uuid"
)

// Direction is a debit/credit marker on a ledger line.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// LedgerEntry is one atomic economic event. Immutable once created.
// At most one entry may reference a given request.
type LedgerEntry struct {
	ID        uuid.UUID    `json:"id"`
	RequestID *uuid.UUID   `json:"request_id,omitempty"`
	Memo      string       `json:"memo"`
	CreatedAt time.Time    `json:"created_at"`
	Lines     []LedgerLine `json:"lines,omitempty"`
}

// LedgerLine is one debit or credit leg of an entry.
type LedgerLine struct {
	ID          uuid.UUID `json:"id"`
	EntryID     uuid.UUID `json:"entry_id"`
	AccountID   uuid.UUID `json:"account_id"`
	Direction   Direction `json:"direction"`
	AmountMinor int64     `json:"amount_minor"` // always positive
}

// IsBalanced reports whether debits equal credits across the entry's lines.
func (e *LedgerEntry) IsBalanced() bool {
	var debit, credit int64
	for _, l := range e.Lines {
		switch l.Direction {
		case Debit:
			debit += l.AmountMinor
		case Credit:
			credit += l.AmountMinor
		}
	}
	return debit == credit
}
