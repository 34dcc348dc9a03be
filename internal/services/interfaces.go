package services

import (
	"context"

	"ledgerview/internal/models"
)

// TransactionSource is the remote API the transaction list is assembled from.
// Fetch returns records ordered newest first; errors may carry a structured
// *errors.APIError payload or be plain transport failures.
type TransactionSource interface {
	Fetch(ctx context.Context, query models.TransactionListQuery) (*models.TransactionPageResult, error)
	Get(ctx context.Context, id string) (*models.Transaction, error)
	Add(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	Modify(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// AccountResolver looks up accounts in the externally maintained account table.
type AccountResolver interface {
	LookupAccount(id string) *models.Account
}

// CategoryResolver looks up transaction categories.
type CategoryResolver interface {
	LookupCategory(id string) *models.Category
}

// ExchangeRateResolver converts minor-unit amounts between currencies.
// ok is false when no rate is available for the pair.
type ExchangeRateResolver interface {
	Convert(amount int64, fromCurrency, toCurrency string) (converted int64, ok bool)
}

// StaleTarget names a sibling view whose cached data a transaction write
// has made stale.
type StaleTarget string

const (
	StaleAccounts        StaleTarget = "accounts"
	StaleOverview        StaleTarget = "overview"
	StaleStatistics      StaleTarget = "statistics"
	StaleTransactionList StaleTarget = "transaction_list"
)

// StaleNotifier receives post-commit invalidation signals. Consumers mark the
// named view for reload; the service never reaches into sibling caches itself.
type StaleNotifier interface {
	MarkStale(target StaleTarget)
}

// MetricsRecorderInterface records cache activity for monitoring.
type MetricsRecorderInterface interface {
	PageIngested(recordCount int)
	CacheInvalidated()
	ExchangeRateMissing(currency string)
	TransactionMutation(operation, status string)
}

// TransactionServiceInterface drives the remote source and keeps the list
// cache consistent with it.
type TransactionServiceInterface interface {
	Cache() *TransactionListCache
	LoadTransactions(ctx context.Context, reload, autoExpand bool, defaultCurrency string) (*models.TransactionPageResult, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	SaveTransaction(ctx context.Context, txn *models.Transaction, defaultCurrency string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, txn *models.Transaction, defaultCurrency string) error
}
