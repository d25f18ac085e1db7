package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"ecodin/internal/dto"
	"ecodin/internal/models"
	"ecodin/internal/services"
	"ecodin/internal/stream"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamPingInterval = 30 * time.Second
)

// StreamHandler serves the websocket transaction feed. On connect the client
// receives the current snapshot, then a fresh one after every mutation.
type StreamHandler struct {
	transactionService services.TransactionServiceInterface
	tokenService       services.TokenServiceInterface
	hub                *stream.Hub
	upgrader           websocket.Upgrader
	logger             *slog.Logger
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(
	transactionService services.TransactionServiceInterface,
	tokenService services.TokenServiceInterface,
	hub *stream.Hub,
	logger *slog.Logger,
) *StreamHandler {
	return &StreamHandler{
		transactionService: transactionService,
		tokenService:       tokenService,
		hub:                hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
}

// Stream upgrades the connection and pushes transaction snapshots.
// Browsers cannot set headers on websocket handshakes, so the access token
// is read from the token query parameter instead of the Authorization header.
func (h *StreamHandler) Stream(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.NoContent(http.StatusUnauthorized)
	}

	claims, err := h.tokenService.ValidateAccessToken(token)
	if err != nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()
	sub := h.hub.Subscribe(userID)
	defer h.hub.Unsubscribe(sub)

	// Initial snapshot so the client renders without waiting for a mutation.
	if snapshot, err := h.transactionService.Snapshot(userID); err == nil {
		if err := h.writeSnapshot(conn, snapshot); err != nil {
			return nil
		}
	}

	// Drain incoming frames so close and pong frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(streamPingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case snapshot, ok := <-sub.Snapshots():
			if !ok {
				return nil
			}
			if err := h.writeSnapshot(conn, snapshot); err != nil {
				return nil
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-c.Request().Context().Done():
			return nil
		}
	}
}

func (h *StreamHandler) writeSnapshot(conn *websocket.Conn, snapshot []models.Transaction) error {
	responses := make([]dto.TransactionResponse, 0, len(snapshot))
	for i := range snapshot {
		responses = append(responses, toTransactionResponse(&snapshot[i]))
	}

	conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	return conn.WriteJSON(dto.ListTransactionsResponse{
		Transactions: responses,
		Count:        len(responses),
	})
}
