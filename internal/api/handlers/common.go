package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/femfund/femfund/internal/application"
	"github.com/femfund/femfund/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds the request body and, on validation failure, writes the
// 400 payload with per-field messages. Returns false when binding failed.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			fields := make([]response.FieldError, 0, len(verr))
			for _, fe := range verr {
				fields = append(fields, response.FieldError{
					Field:   snakeCase(fe.StructField()),
					Message: validationMessage(fe),
				})
			}
			c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{Errors: fields})
			return false
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	field := snakeCase(fe.StructField())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// writeServiceError maps service-layer errors to HTTP responses. Unknown
// errors become a generic 500 so internals never leak to clients.
func writeServiceError(c *gin.Context, err error) {
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{Errors: verr.Fields})
		return
	}

	switch {
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrOptionNotFound),
		errors.Is(err, application.ErrApplicationNotFound),
		errors.Is(err, application.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotOwner):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrInvalidTransition),
		errors.Is(err, application.ErrNotDraft):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrOptionInactive),
		errors.Is(err, application.ErrIncorrectPassword):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal server error"})
	}
}
