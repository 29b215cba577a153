package slack

import (
	"context"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lithammer/shortuuid/v4"
	"github.com/rs/zerolog"
)

// readTimeout is the RTM read deadline. Slack sends a server-initiated
// ping every 30 seconds, so 70 seconds allows two missed pings before
// declaring the peer dead.
const readTimeout = 70 * time.Second

// EventHandler receives RTM session callbacks. All callbacks are
// serialized: OnConnect strictly precedes any OnEvent or OnPing, no
// two callbacks run concurrently, and OnClose - when the server
// closes the stream - is the last callback before Run returns.
type EventHandler interface {
	// OnConnect is invoked once, after the WebSocket is established
	// and before any frame is read.
	OnConnect(cli *RtmClient)

	// OnEvent is invoked for every text frame. Either ev is a decoded
	// [Event] and err is nil, or ev is nil and err explains the decode
	// failure. The raw frame text is passed through either way.
	// Decode failures do not end the session.
	OnEvent(cli *RtmClient, ev Event, err error, raw string)

	// OnPing is invoked for every server ping. The engine answers
	// pings regardless.
	OnPing(cli *RtmClient)

	// OnClose is invoked when the server sends a close frame, before
	// Run returns.
	OnClose(cli *RtmClient)
}

// Session is a connected RTM session, produced by [RtmClient.Login]
// and consumed by [RtmClient.Run]. The split lets the caller inspect
// the roster snapshot between the two.
type Session struct {
	conn *websocket.Conn
}

// dialRTM parses the URL returned by rtm.start and performs the
// WebSocket client upgrade.
func dialRTM(ctx context.Context, wsURL string) (*websocket.Conn, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, &Error{Kind: ErrURL, Msg: "invalid RTM WebSocket URL", Err: err}
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Msg: "WebSocket handshake failed", Err: err}
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return conn, nil
}

// Run drives a session produced by [RtmClient.Login] until the server
// closes the stream or the connection fails. It returns nil on a
// clean close and an *[Error] otherwise. The handler's methods are
// invoked only from the read side; the write side is a dedicated
// goroutine draining the outbound queue.
func (c *RtmClient) Run(ctx context.Context, h EventHandler, s *Session) error {
	if s == nil || s.conn == nil {
		return &Error{Kind: ErrInternal, Msg: "no RTM session, log in first"}
	}

	l := zerolog.Ctx(ctx).With().Str("session_id", shortuuid.New()).Logger()
	conn := s.conn
	defer conn.Close()

	h.OnConnect(c)
	l.Debug().Msg("RTM session connected")

	writerDone := make(chan struct{})
	go c.writeLoop(&l, conn, writerDone)

	// Signals the writer to send a close frame and exit, then waits
	// for it. The writer may already be gone after a write error.
	teardown := func() {
		c.sender.shutdown()
		select {
		case c.sender.tx <- wsMessage{kind: closeEnvelope}:
		case <-writerDone:
		}
		<-writerDone
	}

	conn.SetPingHandler(func(payload string) error {
		h.OnPing(c)
		c.sender.enqueuePong([]byte(payload))
		return conn.SetReadDeadline(time.Now().Add(c.readTimeout))
	})

	// The engine answers close frames through the writer goroutine,
	// not from the read side.
	conn.SetCloseHandler(func(code int, text string) error {
		return nil
	})

	for {
		if err := conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			teardown()
			return &Error{Kind: ErrTransport, Msg: "failed to set read deadline", Err: err}
		}

		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if _, closed := err.(*websocket.CloseError); closed {
				l.Debug().Msg("RTM session closed by server")
				h.OnClose(c)
				teardown()
				return nil
			}
			l.Warn().Err(err).Msg("RTM read failed")
			teardown()
			return &Error{Kind: ErrTransport, Msg: "WebSocket read failed", Err: err}
		}

		// Binary frames are ignored.
		if msgType != websocket.TextMessage {
			continue
		}

		ev, derr := DecodeEvent(data)
		h.OnEvent(c, ev, derr, string(data))
	}
}

// writeLoop is the session's single writer: it drains the outbound
// queue onto the wire and exits on a close envelope or a send error.
func (c *RtmClient) writeLoop(l *zerolog.Logger, conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	for msg := range c.sender.tx {
		switch msg.kind {
		case textEnvelope:
			if err := conn.WriteMessage(websocket.TextMessage, msg.payload); err != nil {
				l.Warn().Err(err).Msg("RTM write failed")
				return
			}
		case pongEnvelope:
			if err := conn.WriteMessage(websocket.PongMessage, msg.payload); err != nil {
				l.Warn().Err(err).Msg("RTM pong failed")
				return
			}
		case closeEnvelope:
			data := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			if err := conn.WriteMessage(websocket.CloseMessage, data); err != nil {
				l.Debug().Err(err).Msg("RTM close frame failed")
			}
			return
		}
	}
}

// LoginAndRun combines [RtmClient.Login] and [RtmClient.Run] for
// callers that do not need to inspect the roster snapshot before the
// loop starts.
func (c *RtmClient) LoginAndRun(ctx context.Context, h EventHandler) error {
	s, err := c.Login(ctx)
	if err != nil {
		return err
	}
	return c.Run(ctx, h, s)
}
