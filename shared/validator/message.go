package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"email":       "{field} must be a valid email address",
	"min":         "{field} must be greater than or equal to {param}",
	"max":         "{field} must be less than or equal to {param}",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"oneof":       "{field} must be one of {param}",
	"mimetypes":   "{field} must be one of the following types: {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// message turns the first validation error into a readable sentence,
// falling back to the library's own formatting for tags without a
// template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		replacer := strings.NewReplacer(
			"{field}", valErr.Field(),
			"{param}", valErr.Param(),
		)

		return replacer.Replace(template)
	}

	return valErrors.Error()
}
