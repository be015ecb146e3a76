package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mertcan/eduportal/internal/app/models"
	"github.com/mertcan/eduportal/internal/pkg/schedule"
)

// RegisterCustomValidators installs the portal's binding rules on gin's
// validator engine. Must be called once before the router starts serving.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("weekday", validateWeekday); err != nil {
		return err
	}
	return v.RegisterValidation("clocktime", validateClockTime)
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, err := models.ParseWeekday(fl.Field().String())
	return err == nil
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := schedule.ParseClock(fl.Field().String())
	return err == nil
}
