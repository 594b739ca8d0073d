// Package validator holds the onboarding field rules and exposes the reusable
// ones to Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone10", validatePhone10)
		_ = v.RegisterValidation("email_shape", validateEmailShape)
	}
}

func validatePhone10(fl validator.FieldLevel) bool {
	return ValidatePhone(fl.Field().String()) == ""
}

func validateEmailShape(fl validator.FieldLevel) bool {
	return ValidateEmail(fl.Field().String()) == ""
}
