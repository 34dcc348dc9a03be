package services

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "ledgerview/internal/errors"
	"ledgerview/internal/models"
	"ledgerview/internal/validation"
)

type transactionService struct {
	source   TransactionSource
	cache    *TransactionListCache
	notifier StaleNotifier
	metrics  MetricsRecorderInterface
}

// NewTransactionService wires the remote source to a list cache. notifier and
// metrics may be nil.
func NewTransactionService(source TransactionSource, cache *TransactionListCache, notifier StaleNotifier, metrics MetricsRecorderInterface) TransactionServiceInterface {
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	cache.SetMetricsRecorder(metrics)

	return &transactionService{
		source:   source,
		cache:    cache,
		notifier: notifier,
		metrics:  metrics,
	}
}

func (s *transactionService) Cache() *TransactionListCache {
	return s.cache
}

// LoadTransactions fetches one page from the remote source and feeds it to
// the cache. On reload the query restarts from the filter's max time (or
// unbounded); otherwise it continues from the pagination cursor. A failed
// reload still resets the cache to an empty state and marks it invalid so the
// UI never shows stale data alongside the failure.
func (s *transactionService) LoadTransactions(ctx context.Context, reload, autoExpand bool, defaultCurrency string) (*models.TransactionPageResult, error) {
	filter := s.cache.Filter()

	actualMaxTime := s.cache.NextTimeSequenceId()
	if reload {
		if filter.MaxTime > 0 {
			// upstream max time is in milliseconds, inclusive of the whole second
			actualMaxTime = filter.MaxTime*1000 + 999
		} else {
			actualMaxTime = 0
		}
	}

	result, err := s.source.Fetch(ctx, models.TransactionListQuery{
		MaxTime:    actualMaxTime,
		MinTime:    filter.MinTime * 1000,
		Type:       filter.Type,
		CategoryId: filter.CategoryId,
		AccountId:  filter.AccountId,
		Keyword:    filter.Keyword,
	})
	if err != nil {
		slog.Error("failed to load transaction list", "error", err)
		s.metrics.TransactionMutation("load", "failure")

		if reload {
			s.cache.IngestPage(models.EmptyTransactionPageResult(), true, autoExpand, defaultCurrency)
			s.cache.SetInvalid(true)
		}

		return nil, apperrors.Classify(err, apperrors.TransactionListUnavailable)
	}

	s.cache.IngestPage(result, reload, autoExpand, defaultCurrency)

	if reload {
		s.cache.SetInvalid(false)
	}

	s.metrics.TransactionMutation("load", "success")

	return result, nil
}

// GetTransaction fetches a single record by id.
func (s *transactionService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	txn, err := s.source.Get(ctx, id)
	if err != nil {
		slog.Error("failed to load transaction info", "transaction_id", id, "error", err)
		return nil, apperrors.Classify(err, apperrors.TransactionUnavailable)
	}

	return txn, nil
}

// SaveTransaction adds (empty id) or modifies a record upstream, then keeps
// the cache consistent: a modification is applied in place, an addition makes
// the list stale since its bucket membership is unknown locally. Sibling
// views are notified either way.
func (s *transactionService) SaveTransaction(ctx context.Context, txn *models.Transaction, defaultCurrency string) (*models.Transaction, error) {
	adding := txn.Id == ""
	operation := "modify"
	failureCode := apperrors.TransactionSaveFailed
	if adding {
		operation = "add"
		failureCode = apperrors.TransactionAddFailed
	}

	if !adding {
		if fieldErrors := validation.GetValidator().ValidateStruct(txn); fieldErrors != nil {
			s.metrics.TransactionMutation(operation, "rejected")
			return nil, apperrors.NewAPIError(apperrors.TransactionInvalid, fmt.Sprintf("%v", fieldErrors))
		}
	}

	var saved *models.Transaction
	var err error
	if adding {
		saved, err = s.source.Add(ctx, txn)
	} else {
		saved, err = s.source.Modify(ctx, txn)
	}

	if err != nil {
		slog.Error("failed to save transaction", "transaction_id", txn.Id, "error", err)
		s.metrics.TransactionMutation(operation, "failure")
		return nil, apperrors.Classify(err, failureCode)
	}

	if adding {
		s.cache.SetInvalid(true)
	} else {
		s.cache.ApplyUpdate(saved, defaultCurrency)
	}

	s.notifyTransactionWrite()
	s.metrics.TransactionMutation(operation, "success")

	return saved, nil
}

// DeleteTransaction deletes a record upstream and removes it from the cache.
func (s *transactionService) DeleteTransaction(ctx context.Context, txn *models.Transaction, defaultCurrency string) error {
	if err := s.source.Delete(ctx, txn.Id); err != nil {
		slog.Error("failed to delete transaction", "transaction_id", txn.Id, "error", err)
		s.metrics.TransactionMutation("delete", "failure")
		return apperrors.Classify(err, apperrors.TransactionDeleteFailed)
	}

	s.cache.ApplyRemoval(txn, defaultCurrency)

	s.notifyTransactionWrite()
	s.metrics.TransactionMutation("delete", "success")

	return nil
}

// notifyTransactionWrite emits the post-commit invalidation signals for the
// sibling views a transaction write makes stale.
func (s *transactionService) notifyTransactionWrite() {
	if s.notifier == nil {
		return
	}

	s.notifier.MarkStale(StaleAccounts)
	s.notifier.MarkStale(StaleOverview)
	s.notifier.MarkStale(StaleStatistics)
}
