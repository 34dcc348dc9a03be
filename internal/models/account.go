package models

// AccountCategory mirrors the upstream account category codes.
type AccountCategory int

const (
	AccountCategoryCash AccountCategory = iota + 1
	AccountCategoryDebitCard
	AccountCategoryCreditCard
	AccountCategoryVirtual
	AccountCategoryDebt
	AccountCategoryReceivables
	AccountCategoryInvestment
	AccountCategorySaving
)

// AccountType distinguishes standalone accounts from parents of sub-accounts.
type AccountType int

const (
	AccountTypeSingle           AccountType = 1
	AccountTypeMultiSubAccounts AccountType = 2
)

// Account is the externally maintained account record the cache resolves
// record references against.
type Account struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	ParentId    string          `json:"parentId"`
	Currency    string          `json:"currency" validate:"omitempty,currency_code"`
	Category    AccountCategory `json:"category"`
	Type        AccountType     `json:"type"`
	IsAsset     bool            `json:"isAsset"`
	IsLiability bool            `json:"isLiability"`
}

// WithinHierarchy reports whether the account is the given account or a
// direct sub-account of it. Matching is one level deep only; nested
// sub-account trees are not supported.
func (a *Account) WithinHierarchy(accountId string) bool {
	if a == nil || accountId == "" {
		return false
	}

	return a.Id == accountId || a.ParentId == accountId
}
