package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding rules used by the DTOs on
// Gin's validator engine. Safe to call more than once.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("futuredate", futureDate)
	}
}

// futureDate accepts a YYYY-MM-DD date that is today or later. Format errors
// are left to the datetime rule; this only rejects past dates.
func futureDate(fl validator.FieldLevel) bool {
	d, err := time.ParseInLocation(DateLayout, fl.Field().String(), time.UTC)
	if err != nil {
		return false
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(today)
}
