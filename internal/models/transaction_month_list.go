package models

import "time"

// TransactionTotalAmount is a month bucket's running income/expense total in
// the display currency's minor units. An Incomplete flag marks the matching
// sum as a lower bound: either a needed exchange rate was unavailable, or the
// bucket sits at the pagination frontier with more of its records unfetched.
type TransactionTotalAmount struct {
	Expense           int64 `json:"expense"`
	IncompleteExpense bool  `json:"incompleteExpense"`
	Income            int64 `json:"income"`
	IncompleteIncome  bool  `json:"incompleteIncome"`
}

// TransactionMonthList is one month bucket of the paginated transaction view.
// Items keep the remote fetch order (newest first) and records are only ever
// replaced or removed whole, never mutated in place. Month is 1-based.
type TransactionMonthList struct {
	Year        int                    `json:"year"`
	Month       time.Month             `json:"month"`
	YearMonth   string                 `json:"yearMonth" validate:"omitempty,year_month"`
	Opened      bool                   `json:"opened"`
	Items       []*Transaction         `json:"items"`
	TotalAmount TransactionTotalAmount `json:"totalAmount"`
}

// TransactionListQuery is the fetch request sent to the remote source.
// MaxTime and MinTime are in milliseconds, per the upstream API convention.
type TransactionListQuery struct {
	MaxTime    int64           `json:"maxTime"`
	MinTime    int64           `json:"minTime"`
	Type       TransactionType `json:"type"`
	CategoryId string          `json:"categoryId"`
	AccountId  string          `json:"accountId"`
	Keyword    string          `json:"keyword"`
}

// TransactionPageResult is one fetched page. NextTimeSequenceId is the
// pagination continuation cursor; zero or negative means no older records
// remain upstream.
type TransactionPageResult struct {
	Items              []*Transaction `json:"items"`
	NextTimeSequenceId int64          `json:"nextTimeSequenceId"`
}

// EmptyTransactionPageResult is the sentinel fed to the cache when a reload
// fetch fails or returns nothing, so the cache still resets to a consistent
// empty state.
func EmptyTransactionPageResult() *TransactionPageResult {
	return &TransactionPageResult{Items: nil, NextTimeSequenceId: 0}
}
