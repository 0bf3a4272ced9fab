package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
)

// registerCustomValidators installs the ledger-specific binding rules on
// gin's validator engine. Safe to call more than once; re-registering a tag
// overwrites it.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("category", validCategory)
	}
}

// validCategory accepts any of the enumerated category labels, for either
// kind. The stored model stays permissive for imported data; this rule only
// gates what the entry form submits.
func validCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, category := range domain.ExpenseCategories {
		if value == category {
			return true
		}
	}
	for _, category := range domain.IncomeCategories {
		if value == category {
			return true
		}
	}
	return false
}
