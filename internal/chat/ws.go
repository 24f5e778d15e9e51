package chat

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"listingcrew/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const wsWriteTimeout = 10 * time.Second

// wsEvent is one server push. Type is "messages" with the recent window
// or "error" when a message sent over the socket was refused.
type wsEvent struct {
	Type  string               `json:"type"`
	Data  []domain.ChatMessage `json:"data"`
	Error string               `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the cors middleware and the bearer token.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebsocket pushes the thread's recent window on every change and
// accepts outgoing messages as {"text", "offerId"} frames.
func (h *Handler) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	threadID := chi.URLParam(r, "id")

	// Refuse before upgrading so the client gets a proper status code.
	if _, err := h.service.GetThread(r.Context(), id, threadID); err != nil {
		writeServiceError(w, r, err, "Could not open thread")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(r.Context(), "websocket upgrade failed", "thread_id", threadID, "error", err)
		return
	}

	events := make(chan wsEvent, 4)
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		return h.service.Subscribe(ctx, id, threadID, func(msgs []domain.ChatMessage) error {
			return push(ctx, events, wsEvent{Type: "messages", Data: msgs})
		})
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case evt := <-events:
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteJSON(evt); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		for {
			var in SendInput
			if err := conn.ReadJSON(&in); err != nil {
				return err
			}
			if _, err := h.service.SendMessage(ctx, id, threadID, in); err != nil {
				slog.WarnContext(ctx, "websocket message refused", "thread_id", threadID, "uid", id.UID, "error", err)
				if err := push(ctx, events, wsEvent{Type: "error", Error: err.Error()}); err != nil {
					return err
				}
			}
		}
	})

	// Unblocks the reader once any side has stopped.
	g.Go(func() error {
		<-ctx.Done()
		conn.Close()
		return nil
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) &&
		websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		slog.WarnContext(r.Context(), "websocket closed", "thread_id", threadID, "uid", id.UID, "error", err)
	}
}

func push(ctx context.Context, events chan<- wsEvent, evt wsEvent) error {
	select {
	case events <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
