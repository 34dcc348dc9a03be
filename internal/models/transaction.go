package models

import (
	"errors"
	"time"

	"ledgerview/internal/datetime"
)

// TransactionType represents a transaction type. Values match the upstream API.
type TransactionType byte

const (
	TransactionTypeModifyBalance TransactionType = 1
	TransactionTypeIncome        TransactionType = 2
	TransactionTypeExpense       TransactionType = 3
	TransactionTypeTransfer      TransactionType = 4
)

var (
	ErrMissingTransactionId   = errors.New("transaction id is required")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidTransactionTime = errors.New("transaction time must be positive")
)

// Transaction is a single record owned by the remote source. Amounts are
// minor-unit integers in the owning account's currency. The Day, DayOfWeek,
// SourceAccount, DestinationAccount and Category fields are derived locally
// when the record enters a list cache; they are never sent upstream. The
// resolved references are weak: the cache stores whatever the resolvers
// returned at attach time and does not track their lifetime.
type Transaction struct {
	Id                   string          `json:"id" validate:"required"`
	Time                 int64           `json:"time" validate:"required,gt=0"`
	UtcOffset            int             `json:"utcOffset" validate:"gte=-720,lte=840"`
	Type                 TransactionType `json:"type" validate:"required,transaction_type"`
	SourceAccountId      string          `json:"sourceAccountId"`
	DestinationAccountId string          `json:"destinationAccountId,omitempty"`
	SourceAmount         int64           `json:"sourceAmount"`
	DestinationAmount    int64           `json:"destinationAmount,omitempty"`
	CategoryId           string          `json:"categoryId"`
	Comment              string          `json:"comment,omitempty"`

	// Derived, attached by the list cache.
	Day                int       `json:"day,omitempty"`
	DayOfWeek          string    `json:"dayOfWeek,omitempty"`
	SourceAccount      *Account  `json:"-"`
	DestinationAccount *Account  `json:"-"`
	Category           *Category `json:"-"`
}

// Validate checks the identity fields of a transaction record.
func (t *Transaction) Validate() error {
	if t.Id == "" {
		return ErrMissingTransactionId
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Time <= 0 {
		return ErrInvalidTransactionTime
	}

	return nil
}

// ClockTime returns the record's wall clock: its event time re-based from the
// offset it was entered under onto the viewer's current offset.
func (t *Transaction) ClockTime(viewerOffsetMinutes int) time.Time {
	dummy := datetime.DummyUnixForLocalUsage(t.Time, t.UtcOffset, viewerOffsetMinutes)
	return datetime.TimeAt(dummy, viewerOffsetMinutes)
}

// IsValidTransactionType checks whether the type code is one of the known codes.
func IsValidTransactionType(transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypeModifyBalance, TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}
