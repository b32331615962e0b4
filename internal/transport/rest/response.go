package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kiosk/internal/domain"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// frameErrorBody is returned when an event is rejected but the session still
// has a frame to show.
type frameErrorBody struct {
	errorResponseBody
	Frame *domain.Frame `json:"frame,omitempty"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func frameErrorResponse(c *gin.Context, statusCode int, message, field string, frame *domain.Frame) {
	c.AbortWithStatusJSON(statusCode, frameErrorBody{
		errorResponseBody: errorResponseBody{
			Status:  "error",
			Message: message,
			Code:    statusCode,
			Field:   field,
		},
		Frame: frame,
	})
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusUnauthorized, message)
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

func internalServerErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, "erro interno do servidor")
}
