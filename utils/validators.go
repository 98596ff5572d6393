package utils

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("category", ValidateCategoryRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("category", ValidateCategoryRule)
	}
}

func ValidateCategoryRule(fl validator.FieldLevel) bool {
	return ValidateCategory(fl.Field().String())
}

// ValidateCategory checks the shape of a category token. The category set is
// open-ended (the select control is editable), so any lowercase word is
// accepted rather than a fixed list.
func ValidateCategory(category string) bool {
	if category == "" {
		return false
	}
	for _, char := range category {
		if !unicode.IsLower(char) && !unicode.IsDigit(char) && char != '-' {
			return false
		}
	}
	return true
}
