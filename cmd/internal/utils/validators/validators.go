package validators

import (
	"github.com/go-playground/validator/v10"
	"reflect"
	"strings"
)

// New builds the validator shared by every service. Field errors report the
// JSON name of the offending field so messages match what clients sent.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)
	return validate
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}
