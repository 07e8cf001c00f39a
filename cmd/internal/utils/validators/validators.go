package validators

import (
	"vedacare/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
)

// IsCalendarDate accepts "YYYY-MM-DD".
func IsCalendarDate(fl validator.FieldLevel) bool {
	_, err := utils.ParseCalendarDate(fl.Field().String())
	return err == nil
}

// IsClockTime accepts "HH:MM:SS" or "HH:MM".
func IsClockTime(fl validator.FieldLevel) bool {
	_, err := utils.ParseClockTime(fl.Field().String())
	return err == nil
}
