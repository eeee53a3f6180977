package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

type lookupField interface {
	Valid() bool
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("quarter", func(fl validator.FieldLevel) bool {
		return IsQuarter(fl.Field().Float())
	})

	v.RegisterValidation("lookup", func(fl validator.FieldLevel) bool {
		field, ok := fl.Field().Interface().(lookupField)
		if !ok {
			return false
		}
		return field.Valid()
	})

	return v
}

// IsQuarter reports whether value, rounded to two decimal places, is an
// integer multiple of 0.25. Rounding to cents first sidesteps binary
// float artifacts like 0.1+0.15 != 0.25.
func IsQuarter(value float64) bool {
	cents := math.Round(value * 100)
	return math.Mod(cents, 25) == 0
}

// ValidateQuarter checks the quarter-multiple constraint on a single
// value.
func ValidateQuarter(value float64) error {
	if !IsQuarter(value) {
		return NewErrorValidation("", fmt.Sprintf("%v is not divisible by 0.25", value))
	}
	return nil
}

// Validate applies the entity's field constraints. Returns an
// ErrorValidation naming the first offending field.
func Validate(entity interface{}) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewErrorValidation("", err.Error())
	}

	e := verrs[0]
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "quarter":
		return NewErrorValidation(field, fmt.Sprintf("%v is not divisible by 0.25", e.Value()))
	case "lookup":
		return NewErrorValidation(field, fmt.Sprintf("%v is not a valid choice", e.Value()))
	case "max":
		return NewErrorValidation(field, fmt.Sprintf("must be at most %s characters", e.Param()))
	case "required":
		return NewErrorValidation(field, "is required")
	}
	return NewErrorValidation(field, fmt.Sprintf("failed %s constraint", e.Tag()))
}
