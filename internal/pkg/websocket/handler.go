package websocket

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// IdentityFunc returns the authenticated caller of a request
type IdentityFunc func(c *gin.Context) (models.Identity, bool)

// Handler upgrades authenticated requests to push connections
type Handler struct {
	hub      *Hub
	identify IdentityFunc
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, identify IdentityFunc, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		identify: identify,
		logger:   logger,
	}
}

// HandleConnection godoc
// @Summary Open the realtime push channel
// @Description Upgrades to a WebSocket that receives "message" and "notification" events for the caller
// @Tags realtime
// @Security SessionCookie
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	identity, ok := h.identify(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Str("userID", identity.ID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := newClient(h.hub, conn, identity.ID, h.logger)
	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("userID", identity.ID).
		Str("remoteAddr", client.remoteAddr).
		Msg("WebSocket connection established")
}
