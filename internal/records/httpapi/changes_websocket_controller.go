package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/infra/httpserver"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/httpapi/internal"
	"recordbook-server/internal/records/usecases"

	"github.com/gorilla/websocket"
)

const (
	_wsWriteWait  = 10 * time.Second
	_wsPongWait   = 60 * time.Second
	_wsPingPeriod = 54 * time.Second
	_wsReadLimit  = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type changeClient struct {
	conn  *websocket.Conn
	sheet domain.SheetKind
}

// ChangeWebSocketController streams sheet change events to websocket clients
// subscribed to that sheet.
type ChangeWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]changeClient
	clientsMux sync.Mutex
	register   chan changeClient
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
	stopped    chan struct{}
}

func NewChangeWebSocketController(broker async.InternalBroker) (*ChangeWebSocketController, error) {
	subscription, err := broker.Subscribe(usecases.SheetChangesTopic)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	wsc := &ChangeWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]changeClient),
		register:   make(chan changeClient),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
		stopped:    make(chan struct{}),
	}

	go wsc.run(subscription)

	return wsc, nil
}

var _ httpserver.Controller = (*ChangeWebSocketController)(nil)

func (wsc *ChangeWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/sheets/{sheet}/changes", wsc.handleWebSocket())
}

func (wsc *ChangeWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "websocket upgrade")
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("new websocket connection established",
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("sheet", kind.String()),
		)

		select {
		case wsc.register <- changeClient{conn: conn, sheet: kind}:
		case <-wsc.ctx.Done():
			conn.Close()
			return
		}

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

func (wsc *ChangeWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		select {
		case wsc.unregister <- conn:
		case <-wsc.ctx.Done():
		}
	}()

	conn.SetReadLimit(_wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(_wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(_wsPongWait))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (wsc *ChangeWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(_wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(_wsWriteWait)); err != nil {
				return
			}
		}
	}
}

func (wsc *ChangeWebSocketController) run(subscription async.Subscription) {
	defer close(wsc.stopped)
	defer wsc.broker.Unsubscribe(usecases.SheetChangesTopic, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case client := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[client.conn] = client
			total := len(wsc.clients)
			wsc.clientsMux.Unlock()
			slog.Info("websocket client registered", slog.Int("total_clients", total))

		case conn := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[conn]; ok {
				delete(wsc.clients, conn)
				conn.Close()
			}
			total := len(wsc.clients)
			wsc.clientsMux.Unlock()
			slog.Info("websocket client unregistered", slog.Int("total_clients", total))

		case brokerMsg, ok := <-subscription.Receiver:
			if !ok {
				return
			}
			change, ok := brokerMsg.Value.(usecases.SheetChange)
			if !ok {
				continue
			}
			wsc.broadcast(change)
		}
	}
}

func (wsc *ChangeWebSocketController) broadcast(change usecases.SheetChange) {
	schema, ok := domain.SchemaFor(change.Sheet)
	if !ok {
		return
	}
	message := internal.ToChangeMessage(schema, change)

	wsc.clientsMux.Lock()
	defer wsc.clientsMux.Unlock()

	for conn, client := range wsc.clients {
		if client.sheet != change.Sheet {
			continue
		}

		conn.SetWriteDeadline(time.Now().Add(_wsWriteWait))
		if err := conn.WriteJSON(message); err != nil {
			slog.Error("failed to write message to websocket client", slog.String("error", err.Error()))
			conn.Close()
			delete(wsc.clients, conn)
		}
	}
}

func (wsc *ChangeWebSocketController) Shutdown() {
	slog.Info("shutting down sheet changes websocket controller")
	wsc.cancel()
	<-wsc.stopped

	wsc.clientsMux.Lock()
	for conn := range wsc.clients {
		conn.Close()
		delete(wsc.clients, conn)
	}
	wsc.clientsMux.Unlock()
}
