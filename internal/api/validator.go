package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type structValidator struct {
	validate *validator.Validate
}

// NewValidator reports field errors under their json names.
func NewValidator() echo.Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &structValidator{validate: v}
}

func (sv *structValidator) Validate(i interface{}) error {
	return sv.validate.Struct(i)
}

type validatingBinder struct {
	echo.DefaultBinder
}

// NewBinder binds the request and then runs the router's validator over the result.
func NewBinder() echo.Binder {
	return &validatingBinder{}
}

func (b *validatingBinder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		return err
	}
	return c.Validate(i)
}
