package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/timecove/timesheet-backend/internal/core/workflow"
)

// The datestr rule accepts YYYY-MM-DD calendar dates (a timestamp prefix also
// passes, matching how dates are normalized everywhere else).
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("datestr", func(fl validator.FieldLevel) bool {
			_, ok := workflow.NormalizeDate(fl.Field().String())
			return ok
		})
	}
}
