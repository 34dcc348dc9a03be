package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("weekday", validateWeekday)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("year_month", validateYearMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct and returns field errors keyed by the
// json field name.
func (v *Validator) ValidateStruct(s interface{}) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errs, ok := err.(validator.ValidationErrors); ok {
		validationErrors = errs
	} else {
		fieldErrors[""] = err.Error()
		return fieldErrors
	}

	for _, fieldErr := range validationErrors {
		fieldErrors[fieldErr.Field()] = formatFieldError(fieldErr)
	}

	return fieldErrors
}

func formatFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "weekday":
		return "must be a weekday index between 0 and 6"
	case "currency_code":
		return "must be a 3-letter currency code"
	case "transaction_type":
		return "must be a valid transaction type"
	case "year_month":
		return "must be formatted as YYYY-MM"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}

// Custom validation functions

// validateWeekday validates a first-day-of-week index (0=Sunday .. 6=Saturday)
func validateWeekday(fl validator.FieldLevel) bool {
	weekday := fl.Field().Int()
	return weekday >= 0 && weekday <= 6
}

// validateCurrencyCode validates an ISO 4217 style 3-letter currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^[A-Z]{3}$`, fl.Field().String())
	return matched
}

// validateTransactionType validates the upstream transaction type codes
func validateTransactionType(fl validator.FieldLevel) bool {
	transactionType := fl.Field().Uint()
	return transactionType >= 1 && transactionType <= 4
}

// validateYearMonth validates a "YYYY-MM" / "YYYY-M" month key
func validateYearMonth(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^\d{4}-\d{1,2}$`, fl.Field().String())
	return matched
}
