package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type settingsForm struct {
	FirstDayOfWeek int    `json:"firstDayOfWeek" validate:"weekday"`
	Currency       string `json:"currency" validate:"currency_code"`
	MonthKey       string `json:"monthKey" validate:"year_month"`
	Type           byte   `json:"type" validate:"transaction_type"`
}

func validForm() settingsForm {
	return settingsForm{
		FirstDayOfWeek: 1,
		Currency:       "USD",
		MonthKey:       "2024-03",
		Type:           3,
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.Nil(t, GetValidator().ValidateStruct(validForm()))
}

func TestValidateStruct_CustomRules(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(*settingsForm)
		expectedField string
	}{
		{"weekday above range", func(f *settingsForm) { f.FirstDayOfWeek = 7 }, "firstDayOfWeek"},
		{"weekday below range", func(f *settingsForm) { f.FirstDayOfWeek = -1 }, "firstDayOfWeek"},
		{"lowercase currency", func(f *settingsForm) { f.Currency = "usd" }, "currency"},
		{"short currency", func(f *settingsForm) { f.Currency = "US" }, "currency"},
		{"month key without dash", func(f *settingsForm) { f.MonthKey = "202403" }, "monthKey"},
		{"month key with day", func(f *settingsForm) { f.MonthKey = "2024-03-01" }, "monthKey"},
		{"transaction type zero", func(f *settingsForm) { f.Type = 0 }, "type"},
		{"transaction type unknown", func(f *settingsForm) { f.Type = 9 }, "type"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			fieldErrors := GetValidator().ValidateStruct(form)
			assert.Contains(t, fieldErrors, tc.expectedField, "errors keyed by json field name")
		})
	}
}
