package slack

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
)

// Envelope kinds on the outbound queue. The writer goroutine is the
// queue's only consumer.
const (
	textEnvelope = iota
	pongEnvelope
	closeEnvelope
)

// wsMessage is one outbound envelope: a text frame, a pong echoing a
// server ping, or a close signal that terminates the writer.
type wsMessage struct {
	kind    int
	payload []byte
}

// outboundQueueSize bounds the envelopes buffered between producers
// and the writer goroutine.
const outboundQueueSize = 64

// Sender queues outbound RTM envelopes. It is safe for concurrent use
// from any goroutine, including handler callbacks. A Sender only
// exists while its session does; obtain it from the client after
// login.
type Sender struct {
	tx     chan wsMessage
	msgNum atomic.Int64
	closed atomic.Bool
}

func newSender() *Sender {
	return &Sender{tx: make(chan wsMessage, outboundQueueSize)}
}

// shutdown rejects all future sends. Envelopes already queued are
// discarded along with the session.
func (s *Sender) shutdown() {
	s.closed.Store(true)
}

// GetMsgUID returns the next outbound message id. Ids are unique and
// strictly increasing within a session; the server echoes them back
// as "reply_to" in acks.
func (s *Sender) GetMsgUID() int64 {
	return s.msgNum.Add(1)
}

// Send queues a raw text frame. The caller is responsible for JSON
// validity and for including an id obtained from [Sender.GetMsgUID].
// A nil error means the frame was queued, not that it reached the
// wire.
func (s *Sender) Send(raw string) error {
	if s.closed.Load() {
		return &Error{Kind: ErrInternal, Msg: "the RTM session has ended"}
	}
	select {
	case s.tx <- wsMessage{kind: textEnvelope, payload: []byte(raw)}:
		return nil
	default:
		return &Error{Kind: ErrInternal, Msg: "outbound queue is full"}
	}
}

// SendMessageToID queues a chat message to a channel, group, or IM
// id, and returns the envelope id for ack correlation.
func (s *Sender) SendMessageToID(channel, text string) (int64, error) {
	n := s.GetMsgUID()
	escaped, err := json.Marshal(text)
	if err != nil {
		return 0, &Error{Kind: ErrJSONEncode, Msg: "failed to encode message text", Err: err}
	}
	msg := fmt.Sprintf(`{"id": %d,"type": "message", "channel": "%s","text": %s}`, n, channel, escaped)
	return n, s.Send(msg)
}

// SendTypingToID queues a typing indicator to a channel, group, or IM
// id, and returns the envelope id.
func (s *Sender) SendTypingToID(channel string) (int64, error) {
	n := s.GetMsgUID()
	msg := fmt.Sprintf(`{"id": %d,"type": "typing", "channel": "%s"}`, n, channel)
	return n, s.Send(msg)
}

// enqueuePong queues a pong control frame echoing payload. Pongs are
// dropped rather than blocking the reader when the queue is full.
func (s *Sender) enqueuePong(payload []byte) {
	select {
	case s.tx <- wsMessage{kind: pongEnvelope, payload: payload}:
	default:
	}
}
