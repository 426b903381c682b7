package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/rahmatsubandi/undanganku/pkg/errors"
)

// Response is the envelope every endpoint writes.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo is the client-facing error detail.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries list metadata alongside the data payload.
type Meta struct {
	Total int `json:"total"`
}

// Success writes a success envelope around data.
func Success(c *gin.Context, statusCode int, data interface{}) {
	SuccessWithMeta(c, statusCode, data, nil)
}

// SuccessWithMeta writes a success envelope with list metadata attached.
func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{Success: true, Data: data, Meta: meta})
}

// Error maps err onto an AppError and writes the matching failure envelope.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrInternalServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.JSON(status, Response{
		Success: false,
		Error:   &ErrorInfo{Code: appErr.Code, Message: appErr.Message},
	})
}
