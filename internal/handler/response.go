package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"parley/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

func writeServiceError(c echo.Context, err error) error {
	var recErr *service.RecognitionError
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.As(err, &recErr):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "speech recognition failed", Code: recErr.Code})
	case errors.Is(err, service.ErrRecognition):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "speech recognition failed"})
	case errors.Is(err, service.ErrSynthesisUnavailable):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "speech synthesis unavailable"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
