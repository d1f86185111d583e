package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Register configures a validator instance for API use. Field names in
// validation errors are taken from the json struct tag so that reported
// violations match the wire names the client actually sent.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
