package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// LiveMessage is one frame of the live slot stream.
type LiveMessage struct {
	Type  string               `json:"type"`
	Slots *booking.SlotsResult `json:"slots,omitempty"`
	Error string               `json:"error,omitempty"`
}

// LiveHandler streams a slot grid and recomputes it on every change that
// can affect availability.
type LiveHandler struct {
	slots    *booking.GetSlots
	bus      events.Bus
	metrics  *metrics.Metrics
	log      *slog.Logger
	upgrader websocket.Upgrader
}

func NewLiveHandler(slots *booking.GetSlots, bus events.Bus, m *metrics.Metrics, log *slog.Logger) *LiveHandler {
	return &LiveHandler{
		slots:   slots,
		bus:     bus,
		metrics: m,
		log:     log,
		upgrader: websocket.Upgrader{
			// CORS middleware decides which origins reach us.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *LiveHandler) Slots(c *gin.Context) {
	q := slotsQuery(c)

	// Bad queries are answered over plain HTTP before upgrading.
	first, err := h.slots.Execute(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	h.metrics.StreamOpened()
	defer h.metrics.StreamClosed()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub, err := h.bus.Subscribe(ctx, events.AvailabilityTopics...)
	if err != nil {
		h.log.Error("subscribe failed", "err", err)
		_ = h.write(conn, LiveMessage{Type: "error", Error: "live updates unavailable"})
		return
	}
	defer sub.Close()

	go h.readPump(conn, cancel)

	if err := h.write(conn, LiveMessage{Type: "slots", Slots: first}); err != nil {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case _, ok := <-sub.C():
			if !ok {
				return
			}
			msg := LiveMessage{Type: "slots"}
			res, err := h.slots.Execute(ctx, q)
			if err != nil {
				h.log.Warn("recompute slots failed", "date", q.Date, "err", err)
				msg = LiveMessage{Type: "error", Error: "could not refresh slots"}
			} else {
				msg.Slots = res
			}
			if err := h.write(conn, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains client frames so pongs and close frames are processed.
func (h *LiveHandler) readPump(conn *websocket.Conn, done context.CancelFunc) {
	defer done()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *LiveHandler) write(conn *websocket.Conn, msg LiveMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
