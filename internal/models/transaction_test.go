package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	validId := uuid.New().String()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				Id:              validId,
				Time:            1710500000,
				Type:            TransactionTypeExpense,
				SourceAccountId: "100",
				SourceAmount:    1250,
			},
		},
		{
			name: "valid transfer",
			transaction: Transaction{
				Id:                   validId,
				Time:                 1710500000,
				Type:                 TransactionTypeTransfer,
				SourceAccountId:      "100",
				DestinationAccountId: "200",
				SourceAmount:         1250,
				DestinationAmount:    1250,
			},
		},
		{
			name: "missing id",
			transaction: Transaction{
				Time: 1710500000,
				Type: TransactionTypeIncome,
			},
			wantErr: ErrMissingTransactionId,
		},
		{
			name: "unknown type",
			transaction: Transaction{
				Id:   validId,
				Time: 1710500000,
				Type: TransactionType(9),
			},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name: "non positive time",
			transaction: Transaction{
				Id:   validId,
				Type: TransactionTypeIncome,
			},
			wantErr: ErrInvalidTransactionTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	for _, valid := range []TransactionType{
		TransactionTypeModifyBalance,
		TransactionTypeIncome,
		TransactionTypeExpense,
		TransactionTypeTransfer,
	} {
		assert.True(t, IsValidTransactionType(valid))
	}

	assert.False(t, IsValidTransactionType(TransactionType(0)))
	assert.False(t, IsValidTransactionType(TransactionType(5)))
}

func TestTransaction_ClockTime(t *testing.T) {
	// 2024-03-31 18:30 UTC, entered at UTC+8 (already April 1 there)
	eventTime := time.Date(2024, time.March, 31, 18, 30, 0, 0, time.UTC).Unix()

	txn := &Transaction{Id: "1", Time: eventTime, UtcOffset: 480, Type: TransactionTypeExpense}

	// a viewer at any offset sees the wall clock the record was entered at
	clock := txn.ClockTime(0)
	require.Equal(t, time.April, clock.Month())
	assert.Equal(t, 1, clock.Day())
	assert.Equal(t, 2, clock.Hour())
	assert.Equal(t, 30, clock.Minute())

	clock = txn.ClockTime(480)
	assert.Equal(t, time.April, clock.Month())
	assert.Equal(t, 1, clock.Day())
	assert.Equal(t, 2, clock.Hour())
}
