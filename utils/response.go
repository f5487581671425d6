package utils

import "github.com/gin-gonic/gin"

// ErrorResponse is the body every failed request returns.
func ErrorResponse(message string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
	}
}

// SuccessResponse wraps data in the envelope shared by every handler.
func SuccessResponse(message string, data any) gin.H {
	return gin.H{
		"success": true,
		"message": message,
		"data":    data,
	}
}
