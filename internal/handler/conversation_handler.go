package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"parley/backend/internal/model"
	"parley/backend/internal/service"
)

type ConversationHandler struct {
	service service.ConversationService
}

func NewConversationHandler(service service.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

func (h *ConversationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/conversations", h.Create)
	g.GET("/conversations/:id", h.Get)
	g.PATCH("/conversations/:id/language", h.SetLanguage)
	g.POST("/conversations/:id/swap", h.Swap)
	g.POST("/conversations/:id/turns", h.AppendTurn)
	g.POST("/conversations/:id/listen", h.Listen)
	g.POST("/conversations/:id/speak", h.Speak)
	g.GET("/conversations/:id/view", h.View)
	g.POST("/conversations/:id/end", h.End)
}

type createConversationRequest struct {
	PrimaryLanguage   string `json:"primaryLanguage"`
	SecondaryLanguage string `json:"secondaryLanguage"`
}

type sessionResponse struct {
	ID                string `json:"id"`
	PrimaryLanguage   string `json:"primaryLanguage"`
	SecondaryLanguage string `json:"secondaryLanguage"`
	Swapped           bool   `json:"swapped"`
	TurnCount         int    `json:"turnCount"`
}

func toSessionResponse(info service.SessionInfo) sessionResponse {
	return sessionResponse{
		ID:                info.ID,
		PrimaryLanguage:   info.PrimaryLanguage,
		SecondaryLanguage: info.SecondaryLanguage,
		Swapped:           info.Swapped,
		TurnCount:         info.TurnCount,
	}
}

type turnResponse struct {
	ID            string `json:"id"`
	PrimaryText   string `json:"primaryText"`
	SecondaryText string `json:"secondaryText"`
	Speaker       string `json:"speaker"`
}

func toTurnResponse(turn model.Turn) turnResponse {
	return turnResponse{
		ID:            formatID(turn.ID),
		PrimaryText:   turn.PrimaryText,
		SecondaryText: turn.SecondaryText,
		Speaker:       turn.Speaker.String(),
	}
}

type projectedTurnResponse struct {
	ID           string `json:"id"`
	NativeText   string `json:"nativeText"`
	ForeignText  string `json:"foreignText"`
	IsOwnMessage bool   `json:"isOwnMessage"`
}

type viewResponse struct {
	Viewer            string                  `json:"viewer"`
	Rotated           bool                    `json:"rotated"`
	ListeningLanguage string                  `json:"listeningLanguage"`
	Turns             []projectedTurnResponse `json:"turns"`
}

// Create opens a new conversation session.
func (h *ConversationHandler) Create(c echo.Context) error {
	req := createConversationRequest{PrimaryLanguage: "en", SecondaryLanguage: "es"}
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	info, err := h.service.Create(c.Request().Context(), req.PrimaryLanguage, req.SecondaryLanguage)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toSessionResponse(info))
}

// Get returns the session state.
func (h *ConversationHandler) Get(c echo.Context) error {
	info, err := h.service.Get(c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(info))
}

type setLanguageRequest struct {
	Speaker  string `json:"speaker"`
	Language string `json:"language"`
}

// SetLanguage changes one participant's language.
func (h *ConversationHandler) SetLanguage(c echo.Context) error {
	var req setLanguageRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	speaker, ok := model.ParseSpeaker(req.Speaker)
	if !ok {
		return Error(c, http.StatusBadRequest, "speaker must be primary or secondary")
	}
	info, err := h.service.SetLanguage(c.Param("id"), speaker, req.Language)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(info))
}

// Swap toggles the face-to-face layout rotation.
func (h *ConversationHandler) Swap(c echo.Context) error {
	info, err := h.service.Swap(c.Param("id"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(info))
}

type appendTurnRequest struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// AppendTurn commits a typed utterance: it is translated and appended to
// the session's turn log.
func (h *ConversationHandler) AppendTurn(c echo.Context) error {
	var req appendTurnRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	speaker, ok := model.ParseSpeaker(req.Speaker)
	if !ok {
		return Error(c, http.StatusBadRequest, "speaker must be primary or secondary")
	}
	turn, err := h.service.AppendText(c.Request().Context(), c.Param("id"), speaker, req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toTurnResponse(turn))
}

type listenRequest struct {
	Half string `json:"half"`
}

// Listen captures one spoken utterance on the given half's microphone and
// appends the resulting turn.
func (h *ConversationHandler) Listen(c echo.Context) error {
	var req listenRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	half, ok := model.ParseSpeaker(req.Half)
	if !ok {
		return Error(c, http.StatusBadRequest, "half must be primary or secondary")
	}
	turn, err := h.service.CaptureTurn(c.Request().Context(), c.Param("id"), half)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toTurnResponse(turn))
}

type speakRequest struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Speak plays text aloud on a participant's synthesizer.
func (h *ConversationHandler) Speak(c echo.Context) error {
	var req speakRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	speaker, ok := model.ParseSpeaker(req.Speaker)
	if !ok {
		return Error(c, http.StatusBadRequest, "speaker must be primary or secondary")
	}
	if err := h.service.Speak(c.Param("id"), speaker, req.Text); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

// View returns one participant's oriented projection of the conversation,
// latest turn first.
func (h *ConversationHandler) View(c echo.Context) error {
	viewer, ok := model.ParseSpeaker(c.QueryParam("viewer"))
	if !ok {
		return Error(c, http.StatusBadRequest, "viewer must be primary or secondary")
	}
	view, err := h.service.View(c.Param("id"), viewer)
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := viewResponse{
		Viewer:            view.Viewer.String(),
		Rotated:           view.Rotated,
		ListeningLanguage: view.ListeningLanguage,
		Turns:             make([]projectedTurnResponse, len(view.Turns)),
	}
	for i, turn := range view.Turns {
		resp.Turns[i] = projectedTurnResponse{
			ID:           formatID(turn.ID),
			NativeText:   turn.Native,
			ForeignText:  turn.Foreign,
			IsOwnMessage: turn.IsOwn,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

type endConversationRequest struct {
	Location string `json:"location"`
}

type endConversationResponse struct {
	Summary *summaryResponse `json:"summary,omitempty"`
}

// End closes the session, releasing its speech engines. Sessions that
// produced turns are recorded into the review history.
func (h *ConversationHandler) End(c echo.Context) error {
	var req endConversationRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}
	summary, err := h.service.End(c.Request().Context(), c.Param("id"), req.Location)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := endConversationResponse{}
	if summary != nil {
		s := toSummaryResponse(*summary)
		resp.Summary = &s
	}
	return c.JSON(http.StatusOK, resp)
}
