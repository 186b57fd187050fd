package dto

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldIssue describes one invalid request field
type FieldIssue struct {
	Field   string `json:"field" example:"email"`
	Tag     string `json:"tag,omitempty" example:"required"`
	Message string `json:"message" example:"email is required"`
}

// HandleValidationError converts a binding error into a VAL_001 error detail
// carrying one issue per invalid field.
func HandleValidationError(err error) *ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]FieldIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, FieldIssue{
				Field:   fieldName(fe),
				Tag:     fe.Tag(),
				Message: formatValidationError(fe),
			})
		}
		detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").WithDetails(issues)
		if len(issues) == 1 {
			detail = detail.WithField(issues[0].Field)
		}
		return detail
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").
			WithField(typeErr.Field).
			WithDetails([]FieldIssue{{Field: typeErr.Field, Tag: "type", Message: typeErr.Field + " has the wrong type"}})
	case errors.As(err, &syntaxErr):
		return NewErrorDetail(ErrorCodeValidationFailed, "Malformed JSON body")
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return ""
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "province":
		return field + " must be a Syrian province"
	case "url":
		return field + " must be a valid URL"
	case "gtefield":
		return field + " must not be less than " + fe.Param()
	default:
		return field + " validation failed: " + fe.Tag()
	}
}
