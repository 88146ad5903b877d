package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parley/backend/internal/service"
)

type TranslateHandler struct {
	gateway service.TranslationGateway
}

func NewTranslateHandler(gateway service.TranslationGateway) *TranslateHandler {
	return &TranslateHandler{gateway: gateway}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
}

type translateRequest struct {
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Text           string `json:"text"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	// Failed is set when TranslatedText is a failure sentinel to be shown
	// in place of a translation.
	Failed bool `json:"failed,omitempty"`
}

// Translate performs a one-shot text translation. Failures surface as
// displayable sentinel strings, never HTTP errors.
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	if req.SourceLanguage == "" || req.TargetLanguage == "" {
		return Error(c, http.StatusBadRequest, "sourceLanguage and targetLanguage are required")
	}

	translated := h.gateway.Translate(c.Request().Context(), req.SourceLanguage, req.TargetLanguage, req.Text)
	return c.JSON(http.StatusOK, translateResponse{
		TranslatedText: translated,
		Failed:         service.IsSentinel(translated),
	})
}
