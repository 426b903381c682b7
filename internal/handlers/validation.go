package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/rahmatsubandi/undanganku/pkg/errors"
	"github.com/rahmatsubandi/undanganku/pkg/response"
	appValidator "github.com/rahmatsubandi/undanganku/pkg/validator"
)

// bindAndValidate binds the JSON payload into dest and runs struct validation
// rules. When either step fails a 400 envelope is written and false returned.
func bindAndValidate[T any](c *gin.Context, dest *T) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.NewBadRequest("invalid JSON payload"))
		return false
	}

	if err := appValidator.ValidateStruct(dest); err != nil {
		response.Error(c, appErrors.NewBadRequest(formatValidationError(err)))
		return false
	}

	return true
}

func formatValidationError(err error) string {
	ve, ok := err.(appValidator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return "invalid request payload"
	}

	messages := make([]string, len(ve))
	for i, failure := range ve {
		messages[i] = validationMessage(failure)
	}
	return strings.Join(messages, "; ")
}

func validationMessage(failure appValidator.ValidationError) string {
	field := prettifyFieldName(failure.Field)
	switch failure.Tag {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, failure.Param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, failure.Param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, failure.Param)
	default:
		if failure.Param != "" {
			return fmt.Sprintf("%s failed validation: %s=%s", field, failure.Tag, failure.Param)
		}
		return fmt.Sprintf("%s failed validation: %s", field, failure.Tag)
	}
}

func prettifyFieldName(name string) string {
	if name == "" {
		return "field"
	}
	return strings.ToLower(strings.ReplaceAll(name, "_", " "))
}
