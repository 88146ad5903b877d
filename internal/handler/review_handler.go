package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parley/backend/internal/model"
	"parley/backend/internal/service"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/review", h.List)
	g.GET("/review/:id", h.Get)
	g.PATCH("/review/:id/star", h.ToggleStar)
	g.DELETE("/review/:id", h.Delete)
	g.POST("/review/delete", h.DeleteMany)
	g.GET("/review/selection", h.Selection)
	g.POST("/review/selection/enter", h.EnterSelection)
	g.POST("/review/selection/select", h.Select)
	g.POST("/review/selection/deselect", h.Deselect)
	g.POST("/review/selection/delete", h.DeleteSelected)
	g.DELETE("/review/selection", h.ClearSelection)
}

type summaryResponse struct {
	ID            string `json:"id"`
	Location      string `json:"location"`
	Timestamp     string `json:"timestamp"`
	RawTimestamp  int64  `json:"rawTimestamp"`
	SourceLang    string `json:"sourceLang"`
	TargetLang    string `json:"targetLang"`
	SourceLangTag string `json:"sourceLangTag"`
	TargetLangTag string `json:"targetLangTag"`
	PreviewText   string `json:"previewText"`
	IsStarred     bool   `json:"isStarred"`
}

func toSummaryResponse(s model.ConversationSummary) summaryResponse {
	return summaryResponse{
		ID:            s.ID,
		Location:      s.Location,
		Timestamp:     s.Timestamp,
		RawTimestamp:  s.RawTimestamp,
		SourceLang:    s.SourceLang,
		TargetLang:    s.TargetLang,
		SourceLangTag: s.SourceLangTag,
		TargetLangTag: s.TargetLangTag,
		PreviewText:   s.PreviewText,
		IsStarred:     s.IsStarred,
	}
}

type reviewListResponse struct {
	Conversations      []summaryResponse `json:"conversations"`
	TotalCount         int               `json:"totalCount"`
	FilteredCount      int               `json:"filteredCount"`
	AvailableLanguages []string          `json:"availableLanguages"`
	AvailableLocations []string          `json:"availableLocations"`
}

// List returns the filtered conversation history. Query parameters:
// search, date (all|today|custom), from/to (epoch millis, custom range),
// languages and locations (comma-separated sets).
func (h *ReviewHandler) List(c echo.Context) error {
	state := model.FilterState{
		Search:    c.QueryParam("search"),
		Date:      model.AllTime(),
		Languages: splitParam(c.QueryParam("languages")),
		Locations: splitParam(c.QueryParam("locations")),
	}

	switch c.QueryParam("date") {
	case "", "all":
	case "today":
		state.Date = model.Today()
	case "custom":
		from, okFrom := parseMillis(c.QueryParam("from"))
		to, okTo := parseMillis(c.QueryParam("to"))
		if !okFrom || !okTo || from > to {
			return Error(c, http.StatusBadRequest, "custom range requires from <= to")
		}
		state.Date = model.CustomRange(from, to)
	default:
		return Error(c, http.StatusBadRequest, "date must be all, today or custom")
	}

	list := h.service.List(state)
	resp := reviewListResponse{
		Conversations:      make([]summaryResponse, len(list.Summaries)),
		TotalCount:         list.TotalCount,
		FilteredCount:      list.FilteredCount,
		AvailableLanguages: list.AvailableLanguages,
		AvailableLocations: list.AvailableLocations,
	}
	for i, s := range list.Summaries {
		resp.Conversations[i] = toSummaryResponse(s)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one summary by id.
func (h *ReviewHandler) Get(c echo.Context) error {
	summary, err := h.service.Get(c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSummaryResponse(summary))
}

type toggleStarRequest struct {
	Starred bool `json:"starred"`
}

// ToggleStar sets the starred flag on a summary.
func (h *ReviewHandler) ToggleStar(c echo.Context) error {
	var req toggleStarRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	if !h.service.ToggleStar(c.Param("id"), req.Starred) {
		return Error(c, http.StatusNotFound, "resource not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes one summary.
func (h *ReviewHandler) Delete(c echo.Context) error {
	if !h.service.Delete(c.Param("id")) {
		return Error(c, http.StatusNotFound, "resource not found")
	}
	return c.NoContent(http.StatusNoContent)
}

type deleteManyRequest struct {
	IDs []string `json:"ids"`
}

type deletedResponse struct {
	Deleted int `json:"deleted"`
}

// DeleteMany removes the listed summaries; absent ids are ignored.
func (h *ReviewHandler) DeleteMany(c echo.Context) error {
	var req deleteManyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: h.service.DeleteMany(req.IDs)})
}

// DeleteSelected bulk-deletes the current selection and exits selection
// mode.
func (h *ReviewHandler) DeleteSelected(c echo.Context) error {
	return c.JSON(http.StatusOK, deletedResponse{Deleted: h.service.DeleteSelected()})
}

type selectionRequest struct {
	ID string `json:"id"`
}

type selectionResponse struct {
	Active bool     `json:"active"`
	IDs    []string `json:"ids"`
}

func (h *ReviewHandler) selectionJSON(c echo.Context) error {
	state := h.service.Selection()
	ids := make([]string, 0, len(state.IDs))
	for id := range state.IDs {
		ids = append(ids, id)
	}
	return c.JSON(http.StatusOK, selectionResponse{Active: state.Active, IDs: ids})
}

// Selection returns the current selection state.
func (h *ReviewHandler) Selection(c echo.Context) error {
	return h.selectionJSON(c)
}

// EnterSelection is the long-press transition into selection mode.
func (h *ReviewHandler) EnterSelection(c echo.Context) error {
	var req selectionRequest
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return Error(c, http.StatusBadRequest, "id is required")
	}
	h.service.EnterSelection(req.ID)
	return h.selectionJSON(c)
}

// Select adds a summary to the selection set.
func (h *ReviewHandler) Select(c echo.Context) error {
	var req selectionRequest
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return Error(c, http.StatusBadRequest, "id is required")
	}
	h.service.Select(req.ID)
	return h.selectionJSON(c)
}

// Deselect removes a summary from the selection set; draining the set
// exits selection mode.
func (h *ReviewHandler) Deselect(c echo.Context) error {
	var req selectionRequest
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return Error(c, http.StatusBadRequest, "id is required")
	}
	h.service.Deselect(req.ID)
	return h.selectionJSON(c)
}

// ClearSelection empties the selection set and exits selection mode.
func (h *ReviewHandler) ClearSelection(c echo.Context) error {
	h.service.ClearSelection()
	return c.NoContent(http.StatusNoContent)
}
