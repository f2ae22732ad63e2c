package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	RegisterCustomValidations(validate)
}

// ValidateStruct runs the struct rules; failures come back as
// validator.ValidationErrors with json field names in the namespace.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
