package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Transaction List Unavailable",
			code:     TransactionListUnavailable,
			expected: "Unable to get transaction list",
		},
		{
			name:     "Transaction Unavailable",
			code:     TransactionUnavailable,
			expected: "Unable to get transaction",
		},
		{
			name:     "Transaction Add Failed",
			code:     TransactionAddFailed,
			expected: "Unable to add transaction",
		},
		{
			name:     "Transaction Save Failed",
			code:     TransactionSaveFailed,
			expected: "Unable to save transaction",
		},
		{
			name:     "Transaction Delete Failed",
			code:     TransactionDeleteFailed,
			expected: "Unable to delete this transaction",
		},
		{
			name:     "Transaction Invalid",
			code:     TransactionInvalid,
			expected: "Transaction is invalid",
		},
		{
			name:     "Date Invalid Range",
			code:     DateInvalidRange,
			expected: "Date range is invalid",
		},
		{
			name:     "Date Invalid Weekday",
			code:     DateInvalidWeekday,
			expected: "First day of week is invalid",
		},
		{
			name:     "Date Invalid Month",
			code:     DateInvalidMonth,
			expected: "Year or month is invalid",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_UnknownCode tests getting message for unknown error codes
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	message := GetErrorMessage(ErrorCode("UNKNOWN_999"))
	s.Equal("An unexpected error occurred", message)
}

// TestErrorCode_Values tests that error codes have the expected wire values
func (s *CodesTestSuite) TestErrorCode_Values() {
	s.Equal(ErrorCode("TRANSACTION_001"), TransactionListUnavailable)
	s.Equal(ErrorCode("TRANSACTION_006"), TransactionInvalid)
	s.Equal(ErrorCode("DATE_001"), DateInvalidRange)
	s.Equal(ErrorCode("VALIDATION_001"), ValidationGeneral)
}
