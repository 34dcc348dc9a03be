package services

import (
	"time"

	"ledgerview/internal/datetime"
	"ledgerview/internal/models"
)

// NoMoreDataCursor is the pagination cursor sentinel meaning no older records
// exist upstream.
const NoMoreDataCursor int64 = -1

// TransactionListCache maintains a month-bucketed, running-total view of
// transaction records fetched page by page from a remote source under a
// mutable filter.
//
// The cache is pure state: it performs no I/O and never fails; it is driven
// by a caller (TransactionService) that performs the fetches. All operations
// assume serialized application; the cache is owned by a single consuming
// context and is not safe for concurrent mutation.
type TransactionListCache struct {
	filter             models.TransactionFilter
	months             []*models.TransactionMonthList
	nextTimeSequenceId int64
	invalid            bool

	accounts     AccountResolver
	categories   CategoryResolver
	rates        ExchangeRateResolver
	viewerOffset func() int
	metrics      MetricsRecorderInterface
}

// NewTransactionListCache creates an empty, invalid cache over the given
// collaborators. The viewer UTC offset defaults to the host local zone.
func NewTransactionListCache(accounts AccountResolver, categories CategoryResolver, rates ExchangeRateResolver) *TransactionListCache {
	return &TransactionListCache{
		filter:  models.DefaultTransactionFilter(),
		invalid: true,

		accounts:   accounts,
		categories: categories,
		rates:      rates,
		viewerOffset: func() int {
			_, offsetSeconds := time.Now().Zone()
			return offsetSeconds / 60
		},
		metrics: NoopMetrics{},
	}
}

// SetViewerOffsetFunc overrides how the viewer's current UTC offset in
// minutes is obtained.
func (c *TransactionListCache) SetViewerOffsetFunc(fn func() int) {
	if fn != nil {
		c.viewerOffset = fn
	}
}

// SetMetricsRecorder attaches a metrics recorder.
func (c *TransactionListCache) SetMetricsRecorder(recorder MetricsRecorderInterface) {
	if recorder != nil {
		c.metrics = recorder
	}
}

// Filter returns a copy of the active filter.
func (c *TransactionListCache) Filter() models.TransactionFilter {
	return c.filter
}

// MonthLists returns the current bucket sequence, newest month first.
func (c *TransactionListCache) MonthLists() []*models.TransactionMonthList {
	return c.months
}

// NextTimeSequenceId returns the pagination continuation cursor.
func (c *TransactionListCache) NextTimeSequenceId() int64 {
	return c.nextTimeSequenceId
}

// HasMoreTransaction reports whether older records may still exist upstream.
func (c *TransactionListCache) HasMoreTransaction() bool {
	return c.nextTimeSequenceId > 0
}

// NoTransaction reports whether the cache holds no records at all.
func (c *TransactionListCache) NoTransaction() bool {
	for _, monthList := range c.months {
		if len(monthList.Items) > 0 {
			return false
		}
	}
	return true
}

// Invalid reports whether the in-memory buckets are known stale relative to
// the active filter; consumers must force a reload before trusting the cache.
func (c *TransactionListCache) Invalid() bool {
	return c.invalid
}

// SetInvalid flips the staleness flag.
func (c *TransactionListCache) SetInvalid(invalid bool) {
	if invalid && !c.invalid {
		c.metrics.CacheInvalidated()
	}
	c.invalid = invalid
}

// ResetFilter restores the default filter and empties the cache.
func (c *TransactionListCache) ResetFilter() {
	c.filter = models.DefaultTransactionFilter()
	c.clear()
}

// InitFilter replaces the whole filter and empties the cache; a reload cycle
// is required before the cache is usable again.
func (c *TransactionListCache) InitFilter(filter models.TransactionFilter) {
	filter.Normalize()
	c.filter = filter
	c.clear()
}

// UpdateFilter merges a partial filter change and empties the cache.
func (c *TransactionListCache) UpdateFilter(patch models.TransactionFilterPatch) {
	c.filter.Apply(patch)
	c.clear()
}

func (c *TransactionListCache) clear() {
	c.months = nil
	c.nextTimeSequenceId = 0
	c.SetInvalid(true)
}

// CollapseMonth sets the UI expand state of a bucket.
func (c *TransactionListCache) CollapseMonth(monthList *models.TransactionMonthList, collapse bool) {
	if monthList != nil {
		monthList.Opened = !collapse
	}
}

// IngestPage merges one fetched page into the bucket sequence. Records are
// assumed ordered newest first, matching the fetch direction. A bucket's
// total is finalized as complete the moment a following month opens, since
// monotonic ordering guarantees no further records for it will arrive. When
// the page reports no continuation cursor, the trailing bucket is finalized
// too and the cursor becomes NoMoreDataCursor.
func (c *TransactionListCache) IngestPage(result *models.TransactionPageResult, reload, autoExpand bool, defaultCurrency string) {
	if reload {
		c.months = nil
	}

	if result == nil {
		result = models.EmptyTransactionPageResult()
	}

	if len(result.Items) > 0 {
		viewerOffset := c.viewerOffset()
		currentIndex := -1
		var current *models.TransactionMonthList

		for _, item := range result.Items {
			c.fillTransaction(item, viewerOffset)

			clock := item.ClockTime(viewerOffset)
			year := clock.Year()
			month := clock.Month()

			if current != nil && current.Year == year && current.Month == month {
				current.Items = append(current.Items, item)
				c.recalculateMonthTotal(current, defaultCurrency, true)
				continue
			}

			for j := currentIndex + 1; j < len(c.months); j++ {
				if c.months[j].Year == year && c.months[j].Month == month {
					currentIndex = j
					current = c.months[j]
					break
				}
			}

			if current == nil || current.Year != year || current.Month != month {
				// the previous frontier bucket will receive no more records
				c.recalculateMonthTotal(current, defaultCurrency, false)

				c.months = append(c.months, &models.TransactionMonthList{
					Year:      year,
					Month:     month,
					YearMonth: datetime.YearMonth{Year: year, Month: month}.String(),
					Opened:    autoExpand,
				})

				currentIndex = len(c.months) - 1
				current = c.months[currentIndex]
			}

			current.Items = append(current.Items, item)
			c.recalculateMonthTotal(current, defaultCurrency, true)
		}
	}

	if result.NextTimeSequenceId > 0 {
		c.nextTimeSequenceId = result.NextTimeSequenceId
	} else {
		if len(c.months) > 0 {
			c.recalculateMonthTotal(c.months[len(c.months)-1], defaultCurrency, false)
		}
		c.nextTimeSequenceId = NoMoreDataCursor
	}

	c.metrics.PageIngested(len(result.Items))
}

// ApplyUpdate replaces a record in place after a remote modification. A
// change that would move the record to another bucket (different month, or a
// day no longer consistent with its bucket) is not relocated; the whole cache
// is marked invalid instead and the caller must force a reload. A record that
// stops matching the active filter is removed from its bucket.
func (c *TransactionListCache) ApplyUpdate(txn *models.Transaction, defaultCurrency string) {
	viewerOffset := c.viewerOffset()
	clock := txn.ClockTime(viewerOffset)
	year := clock.Year()
	month := clock.Month()

	for i, monthList := range c.months {
		for j, item := range monthList.Items {
			if item.Id != txn.Id {
				continue
			}

			c.fillTransaction(txn, viewerOffset)

			if year != monthList.Year || month != monthList.Month || txn.Day != item.Day {
				c.SetInvalid(true)
				return
			}

			if !c.filter.MatchesCategory(txn) || !c.filter.MatchesAccount(txn) {
				monthList.Items = append(monthList.Items[:j], monthList.Items[j+1:]...)
			} else {
				monthList.Items[j] = txn
			}

			if len(monthList.Items) < 1 {
				c.months = append(c.months[:i], c.months[i+1:]...)
			} else {
				c.recalculateMonthTotal(monthList, defaultCurrency, c.frontierIncomplete(i))
			}

			return
		}
	}
}

// ApplyRemoval removes a record after a remote deletion. Only buckets whose
// item time span brackets the record's time are scanned. An emptied bucket is
// dropped entirely.
func (c *TransactionListCache) ApplyRemoval(txn *models.Transaction, defaultCurrency string) {
	for i := 0; i < len(c.months); i++ {
		monthList := c.months[i]

		// items are newest first
		if len(monthList.Items) == 0 ||
			monthList.Items[0].Time < txn.Time ||
			monthList.Items[len(monthList.Items)-1].Time > txn.Time {
			continue
		}

		for j := 0; j < len(monthList.Items); j++ {
			if monthList.Items[j].Id == txn.Id {
				monthList.Items = append(monthList.Items[:j], monthList.Items[j+1:]...)
				j--
			}
		}

		if len(monthList.Items) < 1 {
			c.months = append(c.months[:i], c.months[i+1:]...)
			i--
		} else {
			c.recalculateMonthTotal(monthList, defaultCurrency, c.frontierIncomplete(i))
		}
	}
}

// frontierIncomplete reports whether the bucket at index i is the pagination
// frontier: the oldest loaded bucket while more data may still exist upstream.
func (c *TransactionListCache) frontierIncomplete(i int) bool {
	return i >= len(c.months)-1 && c.nextTimeSequenceId > 0
}

func (c *TransactionListCache) fillTransaction(txn *models.Transaction, viewerOffset int) {
	if txn == nil {
		return
	}

	clock := txn.ClockTime(viewerOffset)
	txn.Day = clock.Day()
	txn.DayOfWeek = clock.Weekday().String()

	if txn.SourceAccountId != "" {
		txn.SourceAccount = c.accounts.LookupAccount(txn.SourceAccountId)
	}

	if txn.DestinationAccountId != "" {
		txn.DestinationAccount = c.accounts.LookupAccount(txn.DestinationAccountId)
	}

	if txn.CategoryId != "" {
		txn.Category = c.categories.LookupCategory(txn.CategoryId)
	}
}

// recalculateMonthTotal recomputes a bucket's running income/expense total in
// the display currency. Amounts whose exchange rate is unavailable are
// excluded and flag the matching total incomplete, keeping the sum a lower
// bound rather than silently wrong.
func (c *TransactionListCache) recalculateMonthTotal(monthList *models.TransactionMonthList, defaultCurrency string, incomplete bool) {
	if monthList == nil {
		return
	}

	accountId := c.filter.FilterAccountId()

	var totalExpense, totalIncome int64
	var hasUncalculatedExpense, hasUncalculatedIncome bool

	for _, txn := range monthList.Items {
		amount := txn.SourceAmount
		account := txn.SourceAccount

		if accountId != "" && txn.DestinationAccount.WithinHierarchy(accountId) {
			amount = txn.DestinationAmount
			account = txn.DestinationAccount
		}

		if account == nil {
			continue
		}

		if account.Currency != defaultCurrency {
			converted, ok := c.rates.Convert(amount, account.Currency, defaultCurrency)
			if !ok {
				switch txn.Type {
				case models.TransactionTypeExpense:
					hasUncalculatedExpense = true
				case models.TransactionTypeIncome:
					hasUncalculatedIncome = true
				}

				c.metrics.ExchangeRateMissing(account.Currency)
				continue
			}

			amount = converted
		}

		switch txn.Type {
		case models.TransactionTypeExpense:
			totalExpense += amount
		case models.TransactionTypeIncome:
			totalIncome += amount
		case models.TransactionTypeTransfer:
			if accountId == "" {
				continue
			}

			sourceInHierarchy := txn.SourceAccount != nil && txn.SourceAccount.ParentId == accountId
			destinationInHierarchy := txn.DestinationAccount != nil && txn.DestinationAccount.ParentId == accountId

			switch {
			case txn.SourceAccountId == accountId:
				totalExpense += amount
			case txn.DestinationAccountId == accountId:
				totalIncome += amount
			case sourceInHierarchy && destinationInHierarchy:
				// transfer internal to the filtered account's hierarchy
			case sourceInHierarchy:
				totalExpense += amount
			case destinationInHierarchy:
				totalIncome += amount
			}
		}
	}

	monthList.TotalAmount = models.TransactionTotalAmount{
		Expense:           totalExpense,
		IncompleteExpense: incomplete || hasUncalculatedExpense,
		Income:            totalIncome,
		IncompleteIncome:  incomplete || hasUncalculatedIncome,
	}
}
