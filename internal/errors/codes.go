package errors

// ErrorCode represents a standardized error code surfaced to the consuming UI
type ErrorCode string

// Transaction fetch/store error codes (TRANSACTION_*)
const (
	TransactionListUnavailable ErrorCode = "TRANSACTION_001"
	TransactionUnavailable     ErrorCode = "TRANSACTION_002"
	TransactionAddFailed       ErrorCode = "TRANSACTION_003"
	TransactionSaveFailed      ErrorCode = "TRANSACTION_004"
	TransactionDeleteFailed    ErrorCode = "TRANSACTION_005"
	TransactionInvalid         ErrorCode = "TRANSACTION_006"
)

// Date range error codes (DATE_*)
const (
	DateInvalidRange   ErrorCode = "DATE_001"
	DateInvalidWeekday ErrorCode = "DATE_002"
	DateInvalidMonth   ErrorCode = "DATE_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral ErrorCode = "VALIDATION_001"
)

// errorMessages maps error codes to their default human-readable messages.
// The consuming UI localizes by code; these strings are fallbacks.
var errorMessages = map[ErrorCode]string{
	TransactionListUnavailable: "Unable to get transaction list",
	TransactionUnavailable:     "Unable to get transaction",
	TransactionAddFailed:       "Unable to add transaction",
	TransactionSaveFailed:      "Unable to save transaction",
	TransactionDeleteFailed:    "Unable to delete this transaction",
	TransactionInvalid:         "Transaction is invalid",

	DateInvalidRange:   "Date range is invalid",
	DateInvalidWeekday: "First day of week is invalid",
	DateInvalidMonth:   "Year or month is invalid",

	ValidationGeneral: "Validation failed",
}

// GetErrorMessage returns the default message for an error code.
// Unknown codes yield a generic message.
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An unexpected error occurred"
}
