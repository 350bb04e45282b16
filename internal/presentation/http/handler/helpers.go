package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dukabook/dukabook-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// bindJSON binds the request body into req and writes a 400 carrying the
// first failing field's message when binding fails. Returns false when
// the request has already been answered.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return false
	}
	return true
}

// bindErrorMessage turns a binding error into a client-facing message.
// Only the first field error is reported.
func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "email":
			return fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "datetime":
			return fmt.Sprintf("%s must be in YYYY-MM-DD format", field)
		default:
			return fmt.Sprintf("%s is invalid", field)
		}
	}
	return "Invalid request body"
}
