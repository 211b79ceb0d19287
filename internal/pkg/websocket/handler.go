package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Handler upgrades panel connections and registers them with the hub
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler. Cross-origin upgrades are refused.
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Subscribe to alumno changes
// @Description Upgrades to a WebSocket that receives an "alumnos.changed" event after every committed create, update or delete
// @Tags alumnos, websocket
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 400 {string} string "Not a WebSocket handshake"
// @Failure 403 {string} string "Cross-origin request"
// @Router /alumnos/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	// Upgrade writes the HTTP error response itself when it fails
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Debug().Err(err).Str("clientIp", c.ClientIP()).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		logger: h.logger,
	}
	if !h.hub.join(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
