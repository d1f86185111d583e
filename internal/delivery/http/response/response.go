package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessBody is the envelope for successful responses.
type SuccessBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody is the envelope for failed responses. Details carries
// field-level violations for validation failures and is omitted
// otherwise; internal error detail never appears here.
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, SuccessBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, ErrorBody{
		Error:   message,
		Details: details,
	})
}
