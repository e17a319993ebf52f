package handlers

import "github.com/go-playground/validator/v10"

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errors := make(map[string]string)
	for _, err := range errs {
		errors[err.Field()] = "Field validation for '" + err.Field() + "' failed on the '" + err.Tag() + "' tag"
	}
	return errors
}
