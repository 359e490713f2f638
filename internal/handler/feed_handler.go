package handler

import (
	"encoding/json"

	"imagine-algorithm/internal/dto"
	"imagine-algorithm/internal/pkg/logger"
	"imagine-algorithm/internal/pkg/serverutils"
	"imagine-algorithm/internal/service"
	internalWS "imagine-algorithm/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// FeedHandler streams a session's insight feed over a websocket.
type FeedHandler struct {
	analyzer service.IAnalyzerService
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewFeedHandler(analyzer service.IAnalyzerService, hub *internalWS.Hub, log logger.ILogger) *FeedHandler {
	return &FeedHandler{
		analyzer: analyzer,
		hub:      hub,
		logger:   log,
	}
}

// ServeWs upgrades the request and pushes the current feed, then every
// later change, until the peer goes away. The session comes from the
// session cookie sent with the handshake.
func (h *FeedHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	sessionID, err := uuid.Parse(serverutils.SessionID(c))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid session", err)
	}

	snap := h.analyzer.Snapshot(c.UserContext(), sessionID.String())
	initial, err := json.Marshal(dto.FeedPush{
		Type: "feed",
		Data: dto.FeedUpdateMessage{SessionId: snap.SessionId, Active: snap.Active, Feed: snap.Feed},
	})
	if err != nil {
		return err
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("FeedHandler", "Starting feed session", map[string]interface{}{"session_id": sessionID})
		internalWS.ServeWs(h.hub, conn, sessionID, initial)
		h.logger.Info("FeedHandler", "Feed session ended", map[string]interface{}{"session_id": sessionID})
	})(c)
}

func (h *FeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/analyzer/v1/feed/ws", h.ServeWs)
}
