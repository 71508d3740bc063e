package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	codeInvalidInput     = "INVALID_INPUT"
	codeDuplicate        = "DUPLICATE"
	codeRateLimited      = "RATE_LIMITED"
	codeNotFound         = "NOT_FOUND"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeSendFailed       = "SEND_FAILED"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(getStatusCode(code), ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case codeInvalidInput:
		return http.StatusBadRequest
	case codeDuplicate:
		return http.StatusConflict
	case codeRateLimited:
		return http.StatusTooManyRequests
	case codeNotFound:
		return http.StatusNotFound
	case codeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case codeSendFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
