package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	// a zero Date counts as missing for "required"
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(Date); ok && !d.IsZero() {
			return d.String()
		}
		return nil
	}, Date{})

	return v
}

// validateStruct runs the validate tags of s and reports the first failure.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Errorf("%s is required", fe.Field())
	case "max":
		return fmt.Errorf("%s must be at most %s characters, got %q", fe.Field(), fe.Param(), fe.Value())
	case "gte":
		return fmt.Errorf("%s must not be negative, got %v", fe.Field(), fe.Value())
	default:
		return fmt.Errorf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
