package models

import "ledgerview/internal/datetime"

// AllFilterValue is the wildcard id for category/account filters.
const AllFilterValue = "0"

// TransactionFilter is the active criteria of a transaction list view.
// MinTime/MaxTime are unix seconds; zero means unbounded on that side.
// A zero Type matches every transaction type.
type TransactionFilter struct {
	DateType   datetime.DateRangeType `json:"dateType"`
	MaxTime    int64                  `json:"maxTime"`
	MinTime    int64                  `json:"minTime"`
	Type       TransactionType        `json:"type"`
	CategoryId string                 `json:"categoryId"`
	AccountId  string                 `json:"accountId"`
	Keyword    string                 `json:"keyword"`
}

// TransactionFilterPatch carries partial filter changes; nil fields keep the
// current value.
type TransactionFilterPatch struct {
	DateType   *datetime.DateRangeType
	MaxTime    *int64
	MinTime    *int64
	Type       *TransactionType
	CategoryId *string
	AccountId  *string
	Keyword    *string
}

// DefaultTransactionFilter returns the all-time, everything-matches filter.
func DefaultTransactionFilter() TransactionFilter {
	return TransactionFilter{
		DateType:   datetime.DateRangeAll,
		CategoryId: AllFilterValue,
		AccountId:  AllFilterValue,
	}
}

// Normalize replaces empty wildcard ids with the canonical AllFilterValue.
func (f *TransactionFilter) Normalize() {
	if f.CategoryId == "" {
		f.CategoryId = AllFilterValue
	}
	if f.AccountId == "" {
		f.AccountId = AllFilterValue
	}
}

// Apply merges a patch into the filter.
func (f *TransactionFilter) Apply(patch TransactionFilterPatch) {
	if patch.DateType != nil {
		f.DateType = *patch.DateType
	}
	if patch.MaxTime != nil {
		f.MaxTime = *patch.MaxTime
	}
	if patch.MinTime != nil {
		f.MinTime = *patch.MinTime
	}
	if patch.Type != nil {
		f.Type = *patch.Type
	}
	if patch.CategoryId != nil {
		f.CategoryId = *patch.CategoryId
	}
	if patch.AccountId != nil {
		f.AccountId = *patch.AccountId
	}
	if patch.Keyword != nil {
		f.Keyword = *patch.Keyword
	}

	f.Normalize()
}

// FilterAccountId returns the account filter id, or "" when inactive.
func (f *TransactionFilter) FilterAccountId() string {
	if f.AccountId == "" || f.AccountId == AllFilterValue {
		return ""
	}
	return f.AccountId
}

// FilterCategoryId returns the category filter id, or "" when inactive.
func (f *TransactionFilter) FilterCategoryId() string {
	if f.CategoryId == "" || f.CategoryId == AllFilterValue {
		return ""
	}
	return f.CategoryId
}

// MatchesCategory reports whether a record satisfies the category criterion.
func (f *TransactionFilter) MatchesCategory(txn *Transaction) bool {
	categoryId := f.FilterCategoryId()
	if categoryId == "" {
		return true
	}

	return txn.CategoryId == categoryId
}

// MatchesAccount reports whether a record satisfies the account criterion.
// A record matches when either leg references the filtered account directly
// or through a one-level parent (sub-account) relationship.
func (f *TransactionFilter) MatchesAccount(txn *Transaction) bool {
	accountId := f.FilterAccountId()
	if accountId == "" {
		return true
	}

	if txn.SourceAccountId == accountId || txn.DestinationAccountId == accountId {
		return true
	}

	if txn.SourceAccount != nil && txn.SourceAccount.ParentId == accountId {
		return true
	}

	if txn.DestinationAccount != nil && txn.DestinationAccount.ParentId == accountId {
		return true
	}

	return false
}
