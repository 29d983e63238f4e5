package ws

import (
	"net/http"
	"sync"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// TrackHub pushes order status changes to every client watching that order.
type TrackHub struct {
	clients    map[string]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusUpdate
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	orders     *services.OrderService
	log        *zap.SugaredLogger
}

type Subscription struct {
	Conn    *websocket.Conn
	OrderID string
}

type StatusUpdate struct {
	OrderID     string             `json:"orderId"`
	Status      entity.OrderStatus `json:"status"`
	DriverID    *string            `json:"driverId,omitempty"`
	DeliveredAt *string            `json:"deliveredAt,omitempty"`
}

func NewTrackHub(orders *services.OrderService, log *zap.SugaredLogger) *TrackHub {
	return &TrackHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusUpdate),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		orders:     orders,
		log:        log,
	}
}

func (h *TrackHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case upd := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[upd.OrderID] {
				if err := conn.WriteJSON(upd); err != nil {
					h.log.Warnw("ws write failed", "orderId", upd.OrderID, "err", err)
					conn.Close()
					delete(h.clients[upd.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish is wired as OrderService.Notify; it runs after the transition
// commits.
func (h *TrackHub) Publish(o *entity.Order) {
	upd := StatusUpdate{OrderID: o.OrderID, Status: o.Status, DriverID: o.DriverID}
	if o.DeliveredAt != nil {
		s := o.DeliveredAt.Format("2006-01-02T15:04:05Z07:00")
		upd.DeliveredAt = &s
	}
	h.broadcast <- upd
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *TrackHub) HandleWebSocket(c *gin.Context) {
	orderID := c.Param("id")

	o, err := h.orders.Get(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnw("ws upgrade failed", "err", err)
		return
	}

	sub := Subscription{Conn: conn, OrderID: o.OrderID}
	h.register <- sub

	// current state first, then live updates
	first := StatusUpdate{OrderID: o.OrderID, Status: o.Status, DriverID: o.DriverID}
	if o.DeliveredAt != nil {
		s := o.DeliveredAt.Format("2006-01-02T15:04:05Z07:00")
		first.DeliveredAt = &s
	}
	_ = conn.WriteJSON(first)

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
