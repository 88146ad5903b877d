package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parley/backend/internal/language"
)

type LanguageHandler struct {
	registry *language.Registry
}

func NewLanguageHandler(registry *language.Registry) *LanguageHandler {
	return &LanguageHandler{registry: registry}
}

func (h *LanguageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/languages", h.List)
}

type languageListResponse struct {
	Languages []language.Language `json:"languages"`
}

// List returns every supported translation language.
func (h *LanguageHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, languageListResponse{Languages: h.registry.All()})
}
