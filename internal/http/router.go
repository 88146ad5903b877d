package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"parley/backend/internal/handler"
)

func NewRouter(
	languageHandler *handler.LanguageHandler,
	translateHandler *handler.TranslateHandler,
	conversationHandler *handler.ConversationHandler,
	reviewHandler *handler.ReviewHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")
	languageHandler.RegisterRoutes(api)
	translateHandler.RegisterRoutes(api)
	conversationHandler.RegisterRoutes(api)
	reviewHandler.RegisterRoutes(api)

	return e
}
