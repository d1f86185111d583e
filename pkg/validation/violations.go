package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps wire field names to user-friendly labels for
// violation messages.
var fieldLabels = map[string]string{
	"fullName":            "Name",
	"email":               "Email",
	"phone":               "Phone number",
	"message":             "Message",
	"companyName":         "Company name",
	"location":            "Location",
	"productCategory":     "Product category",
	"capacityRequirement": "Capacity requirement",
}

// Reason converts a single validator error into a user-facing reason
// string. Messages are short correction prompts, never internal detail.
func Reason(e validator.FieldError) string {
	label := fieldLabels[e.Field()]
	if label == "" {
		label = e.Field()
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "email":
		return "Invalid email address"

	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())

	case "max":
		return fmt.Sprintf("%s is too long", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid", label)
	}
}
