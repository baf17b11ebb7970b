package http

import (
	"time"

	"github.com/astrodate/astrodate-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidations wires custom rules into gin's validator engine.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("birthdate", validBirthDate)
}

// validBirthDate accepts YYYY-MM-DD dates that are not in the future.
// The use case re-checks with precise domain errors; this rule just
// stops garbage at the binding layer.
func validBirthDate(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	t, err := time.Parse(auth.BirthDateLayout, raw)
	if err != nil {
		return false
	}
	return !t.After(time.Now())
}
