package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"realtrust-http-service/internal/error/code"
)

// Response is the unified envelope returned by every endpoint.
type Response struct {
	Code    int         `json:"code"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// FieldError reports a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Success writes a 200 response with the standard envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Success: true,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Created writes a 201 response with the standard envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    code.ErrSuccess,
		Success: true,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail writes a failure response using the message registered for errorCode.
func Fail(c *gin.Context, errorCode int, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Success: false,
		Message: code.GetMessage(errorCode),
		Data:    data,
	})
}

// FailWithMessage writes a failure response with a caller-supplied message.
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Success: false,
		Message: message,
		Data:    data,
	})
}

// ValidationFail translates a gin binding error into a field-by-field
// validation response. Non-validator errors fall back to a bind failure.
func ValidationFail(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Fail(c, code.ErrBind, nil)
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: validationMessage(fe),
		})
	}
	Fail(c, code.ErrValidation, fields)
}

// ValidationFailFields writes a validation response for errors found outside
// the binding layer (e.g. pattern checks).
func ValidationFailFields(c *gin.Context, fields ...FieldError) {
	Fail(c, code.ErrValidation, fields)
}

// ServerError writes a generic failure without leaking internal detail.
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}

// NotFound writes a 404 with an optional custom message.
func NotFound(c *gin.Context, errorCode int) {
	Fail(c, errorCode, nil)
}

// Unauthorized writes a 401 token failure.
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid, nil)
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "please provide a valid email"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be less than " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}
