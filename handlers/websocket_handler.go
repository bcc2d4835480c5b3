package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/websocket"

	"github.com/muskiz/beach-handball/brackets"
	"github.com/muskiz/beach-handball/services"
)

type WebSocketHandler struct {
	hub       *brackets.Hub
	standings services.StandingsService
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewWebSocketHandler: allowedOrigins ["*"] разрешает любые Origin.
func NewWebSocketHandler(hub *brackets.Hub, standings services.StandingsService, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")
	return &WebSocketHandler{
		hub:       hub,
		standings: standings,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// ServeWs подписывает клиента на обновления таблиц.
// /ws/standings - все дивизионы, /ws/standings?division=Elite - один.
// Сразу после подключения клиент получает текущий снимок.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	division, err := divisionParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var snapshot interface{}
	if division == "" {
		snapshot, err = h.standings.All(r.Context())
	} else {
		snapshot, err = h.standings.Division(r.Context(), division)
	}
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader.Upgrade сам отправляет HTTP ошибку клиенту, так что здесь просто логируем.
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	roomID := brackets.DivisionRoom(string(division))
	client := h.hub.NewClient(conn, roomID)

	initial, err := json.Marshal(brackets.WebSocketMessage{
		Type:    services.EventStandingsUpdated,
		Payload: snapshot,
		RoomID:  roomID,
	})
	if err == nil {
		client.Send <- initial
	}

	if !h.hub.Join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
	h.logger.Debug("websocket client joined", slog.String("room", roomID))
}
