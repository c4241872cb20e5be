package notifier

import (
	"net/http"

	"call-insights-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboards connect from the web app origin; CORS is enforced at the
	// HTTP layer and the webhook surface carries no browser credentials.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades dashboard connections and pumps hub events to them.
type Handler struct {
	hub    *Hub
	logger *observability.Logger
}

func NewHandler(hub *Hub, logger *observability.Logger) Handler {
	return Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleDashboardSocket upgrades the request to a websocket and streams
// every event published after the connection was established.
func (h *Handler) HandleDashboardSocket(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "WebSocket upgrade failed", err)
		return
	}
	defer conn.Close()
	h.logger.Info(ctx, "Dashboard WebSocket connection established")

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	// Reader goroutine: we never expect frames from the dashboard, but the
	// read loop is what notices the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			h.logger.Info(ctx, "Dashboard WebSocket closed by peer")
			return
		case envelope, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := conn.WriteJSON(envelope); err != nil {
				h.logger.Error(ctx, "failed to write event to dashboard socket", err)
				return
			}
		}
	}
}
