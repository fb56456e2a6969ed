package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the shared validator over v's validate tags. Request
// types call it from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}
