package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// saleDate validates the YYYY-MM-DD date strings used in request bodies.
func saleDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// registerCustomValidators wires custom binding validations into gin's
// validator engine. Safe to call more than once.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("saledate", saleDate)
	}
}
