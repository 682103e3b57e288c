package handlers

import (
	"net/http"

	"github.com/SscSPs/currency_exchanger/internal/dto"
	"github.com/SscSPs/currency_exchanger/internal/middleware"
	"github.com/SscSPs/currency_exchanger/internal/session"
	"github.com/gin-gonic/gin"
)

type sessionHandler struct {
	session SessionController
}

func registerSessionRoutes(rg *gin.RouterGroup, sess SessionController) {
	h := &sessionHandler{session: sess}

	s := rg.Group("/session")
	{
		s.GET("", h.getSession)
		s.POST("/commands", h.postCommand)
	}
}

// getSession godoc
// @Summary Get screen state
// @Description Returns the latest session snapshot
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /session [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSessionResponse(h.session.Snapshot()))
}

// postCommand godoc
// @Summary Apply a screen command
// @Description Applies selectFromCurrency, selectToCurrency, enterAmount, submit or refresh and returns the resulting snapshot
// @Tags session
// @Accept json
// @Produce json
// @Param command body dto.SessionCommandRequest true "Command"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown command"
// @Failure 503 {object} dto.ErrorResponse "Session loop not running"
// @Router /session/commands [post]
func (h *sessionHandler) postCommand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SessionCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	cmdType, ok := session.ParseCommandType(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown command type: " + req.Type})
		return
	}

	snap, err := h.session.Dispatch(c.Request.Context(), session.Command{Type: cmdType, Value: req.Value})
	if err != nil {
		logger.Warn("Session command not applied", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}
