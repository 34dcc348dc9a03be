package models

// CategoryType mirrors the upstream transaction category codes.
type CategoryType int

const (
	CategoryTypeIncome CategoryType = iota + 1
	CategoryTypeExpense
	CategoryTypeTransfer
)

// Category is the externally maintained transaction category record.
type Category struct {
	Id       string       `json:"id"`
	Name     string       `json:"name"`
	ParentId string       `json:"parentId"`
	Type     CategoryType `json:"type"`
	Hidden   bool         `json:"hidden"`
}
