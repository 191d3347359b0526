package middleware

import (
	"reflect"
	"strings"

	"github.com/celushop/backend/internal/domain/partner"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures the binding validator: error messages name fields
// by their JSON tag, and the "rut" tag checks the shape of a Chilean RUT.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
		return partner.IsPlausibleRUT(fl.Field().String())
	})
}
