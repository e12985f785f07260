package room

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tacktile/interview-agent/internal/metrics"
)

// JoinMetadata is the first text frame sent after the WebSocket upgrade.
type JoinMetadata struct {
	SessionID string `json:"session_id"`
	Identity  string `json:"identity"`
	Position  string `json:"position,omitempty"`
}

// envelope is the wire shape of every event frame after the join frame.
type envelope struct {
	Type        string            `json:"type"`
	Item        *ConversationItem `json:"item,omitempty"`
	Participant *Participant      `json:"participant,omitempty"`
}

// sayFrame is the outbound frame carrying an interviewer reply for the room
// to synthesize and play.
type sayFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Client is a WebSocket connection to the room transport. It decodes event
// frames and dispatches them to a Subscriber; a malformed frame is logged
// and dropped, never fatal to the session.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// Dial connects to the room endpoint and sends the join metadata frame.
func Dial(ctx context.Context, url string, meta JoinMetadata) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("room dial: %w", err)
	}
	if err = conn.WriteJSON(meta); err != nil {
		conn.Close()
		return nil, fmt.Errorf("room join: %w", err)
	}
	return &Client{conn: conn}, nil
}

// Listen reads event frames until the connection closes or ctx is done,
// dispatching each to sub. The subscriber's OnDisconnected is always called
// exactly once, on return.
func (c *Client) Listen(ctx context.Context, sub Subscriber) {
	defer sub.OnDisconnected()

	for {
		if ctx.Err() != nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			slog.Info("room connection closed", "error", err)
			return
		}
		c.dispatch(data, sub)
	}
}

func (c *Client) dispatch(data []byte, sub Subscriber) {
	var ev envelope
	if err := json.Unmarshal(data, &ev); err != nil {
		metrics.EventsDropped.WithLabelValues("malformed").Inc()
		slog.Warn("dropping malformed room event", "error", err)
		return
	}

	switch ev.Type {
	case "conversation_item_added":
		if ev.Item == nil {
			metrics.EventsDropped.WithLabelValues("missing_item").Inc()
			return
		}
		sub.OnConversationItem(*ev.Item)
	case "participant_disconnected":
		if ev.Participant == nil {
			metrics.EventsDropped.WithLabelValues("missing_participant").Inc()
			return
		}
		sub.OnParticipantDisconnected(*ev.Participant)
	default:
		metrics.EventsDropped.WithLabelValues("unknown_type").Inc()
		slog.Warn("dropping unknown room event", "type", ev.Type)
	}
}

// Say sends an interviewer reply to the room. Safe for concurrent use.
func (c *Client) Say(text string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteJSON(sayFrame{Type: "say", Text: text}); err != nil {
		return fmt.Errorf("room say: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
