package slack

import (
	"errors"
	"strings"
	"testing"

	"github.com/tzrikka/slackrtm/pkg/webapi"
)

func TestDecodeEventMessage(t *testing.T) {
	raw := `{"type": "message", "ts": "1234567890.218332", "user": "U12345678",
		"text": "Hello world", "channel": "C12345678"}`

	ev, err := DecodeEvent([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}

	me, ok := ev.(*MessageEvent)
	if !ok {
		t.Fatalf("event type = %T, want *MessageEvent", ev)
	}
	std, ok := me.Msg.(*webapi.StandardMessage)
	if !ok {
		t.Fatalf("message type = %T, want *webapi.StandardMessage", me.Msg)
	}
	if std.Ts != "1234567890.218332" {
		t.Errorf("ts = %q, want %q", std.Ts, "1234567890.218332")
	}
	if std.Text != "Hello world" {
		t.Errorf("text = %q, want %q", std.Text, "Hello world")
	}
	if std.Channel != "C12345678" {
		t.Errorf("channel = %q, want %q", std.Channel, "C12345678")
	}
}

func TestDecodeEventMessageSent(t *testing.T) {
	raw := `{"ok": true, "reply_to": 1, "ts": "1234567890.218332", "text": "Hello world"}`

	ev, err := DecodeEvent([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}

	sent, ok := ev.(*MessageSent)
	if !ok {
		t.Fatalf("event type = %T, want *MessageSent", ev)
	}
	if sent.ReplyTo != 1 {
		t.Errorf("reply_to = %d, want 1", sent.ReplyTo)
	}
	if sent.Ts != "1234567890.218332" {
		t.Errorf("ts = %q, want %q", sent.Ts, "1234567890.218332")
	}
	if sent.Text != "Hello world" {
		t.Errorf("text = %q, want %q", sent.Text, "Hello world")
	}
}

func TestDecodeEventMessageError(t *testing.T) {
	raw := `{"ok": false, "reply_to": 1, "error": {"code": 2, "msg": "message text is missing"}}`

	ev, err := DecodeEvent([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}

	merr, ok := ev.(*MessageError)
	if !ok {
		t.Fatalf("event type = %T, want *MessageError", ev)
	}
	if merr.ReplyTo != 1 {
		t.Errorf("reply_to = %d, want 1", merr.ReplyTo)
	}
	if merr.Error.Code != 2 {
		t.Errorf("error code = %d, want 2", merr.Error.Code)
	}
	if merr.Error.Msg != "message text is missing" {
		t.Errorf("error msg = %q, want %q", merr.Error.Msg, "message text is missing")
	}
}

func TestDecodeEventVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "hello",
			raw:  `{"type": "hello"}`,
			want: "hello",
		},
		{
			name: "user_typing",
			raw:  `{"type": "user_typing", "channel": "C1", "user": "U1"}`,
			want: "user_typing",
		},
		{
			name: "channel_marked",
			raw:  `{"type": "channel_marked", "channel": "C1", "ts": "1.000001"}`,
			want: "channel_marked",
		},
		{
			name: "channel_created",
			raw:  `{"type": "channel_created", "channel": {"id": "C1", "name": "fun", "created": 1360782804, "creator": "U1"}}`,
			want: "channel_created",
		},
		{
			name: "presence_change",
			raw:  `{"type": "presence_change", "user": "U1", "presence": "away"}`,
			want: "presence_change",
		},
		{
			name: "pref_change",
			raw:  `{"type": "pref_change", "name": "messages_theme", "value": "dense"}`,
			want: "pref_change",
		},
		{
			name: "team_join",
			raw:  `{"type": "team_join", "user": {"id": "U2", "name": "newbie"}}`,
			want: "team_join",
		},
		{
			name: "file_deleted",
			raw:  `{"type": "file_deleted", "file_id": "F1", "event_ts": "1.000001"}`,
			want: "file_deleted",
		},
		{
			name: "bot_added",
			raw:  `{"type": "bot_added", "bot": {"id": "B1", "name": "beeper"}}`,
			want: "bot_added",
		},
		{
			name: "team_migration_started",
			raw:  `{"type": "team_migration_started"}`,
			want: "team_migration_started",
		},
		{
			name: "reconnect_url",
			raw:  `{"type": "reconnect_url", "url": "wss://example.com/"}`,
			want: "reconnect_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := DecodeEvent([]byte(tt.raw))
			if err != nil {
				t.Fatalf("DecodeEvent() error = %v", err)
			}
			if got := ev.EventType(); got != tt.want {
				t.Errorf("event type = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeEventUnknownType(t *testing.T) {
	raw := `{"type": "subspace_anomaly"}`

	_, err := DecodeEvent([]byte(raw))
	if err == nil {
		t.Fatal("DecodeEvent() error = nil, want error")
	}

	var decErr *Error
	if !errors.As(err, &decErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if decErr.Kind != ErrJSONDecode {
		t.Errorf("error kind = %v, want %v", decErr.Kind, ErrJSONDecode)
	}
	if !strings.Contains(decErr.Msg, "subspace_anomaly") {
		t.Errorf("error message %q does not name the unknown type", decErr.Msg)
	}
	if decErr.Raw != raw {
		t.Errorf("error raw = %q, want the original frame", decErr.Raw)
	}
}

func TestDecodeEventNotAnAck(t *testing.T) {
	// No "type", and not the ok/reply_to ack shape either.
	_, err := DecodeEvent([]byte(`{"ok": true}`))
	if err == nil {
		t.Fatal("DecodeEvent() error = nil, want error")
	}

	var decErr *Error
	if !errors.As(err, &decErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if decErr.Kind != ErrJSONDecode {
		t.Errorf("error kind = %v, want %v", decErr.Kind, ErrJSONDecode)
	}
}

func TestDecodeEventReactionAdded(t *testing.T) {
	raw := `{
		"type": "reaction_added", "user": "U1", "reaction": "thumbsup",
		"item": {"type": "message", "channel": "C1", "message": {"ts": "1.000001", "user": "U2", "text": "nice"}},
		"item_user": "U2", "event_ts": "2.000002"
	}`

	ev, err := DecodeEvent([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}

	re, ok := ev.(*ReactionAdded)
	if !ok {
		t.Fatalf("event type = %T, want *ReactionAdded", ev)
	}
	if re.Reaction != "thumbsup" {
		t.Errorf("reaction = %q, want %q", re.Reaction, "thumbsup")
	}
	mi, ok := re.Item.(*webapi.MessageItem)
	if !ok {
		t.Fatalf("item type = %T, want *webapi.MessageItem", re.Item)
	}
	if mi.Channel != "C1" {
		t.Errorf("item channel = %q, want %q", mi.Channel, "C1")
	}
}

func TestDecodeEventPinAdded(t *testing.T) {
	raw := `{
		"type": "pin_added", "user": "U1", "channel_id": "C1",
		"item": {"type": "file", "file": {"id": "F1"}},
		"event_ts": "1.000001"
	}`

	ev, err := DecodeEvent([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}

	pa, ok := ev.(*PinAdded)
	if !ok {
		t.Fatalf("event type = %T, want *PinAdded", ev)
	}
	if pa.ChannelID != "C1" {
		t.Errorf("channel_id = %q, want %q", pa.ChannelID, "C1")
	}
	fi, ok := pa.Item.(*webapi.FileItem)
	if !ok {
		t.Fatalf("item type = %T, want *webapi.FileItem", pa.Item)
	}
	if fi.File.ID != "F1" {
		t.Errorf("file id = %q, want %q", fi.File.ID, "F1")
	}
}

func TestDecodeEventStarAdded(t *testing.T) {
	raw := `{
		"type": "star_added", "user": "U1",
		"item": {"type": "channel", "channel": "C1"},
		"event_ts": "1.000001"
	}`

	ev, err := DecodeEvent([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}

	sa, ok := ev.(*StarAdded)
	if !ok {
		t.Fatalf("event type = %T, want *StarAdded", ev)
	}
	sc, ok := sa.Item.(*webapi.StarredChannel)
	if !ok {
		t.Fatalf("item type = %T, want *webapi.StarredChannel", sa.Item)
	}
	if sc.Channel != "C1" {
		t.Errorf("channel = %q, want %q", sc.Channel, "C1")
	}
}

func TestDecodeEventMessageSubtype(t *testing.T) {
	raw := `{"type": "message", "subtype": "channel_topic", "channel": "C1",
		"user": "U1", "topic": "launch day", "text": "set the topic", "ts": "1.000001"}`

	ev, err := DecodeEvent([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeEvent() error = %v", err)
	}

	me, ok := ev.(*MessageEvent)
	if !ok {
		t.Fatalf("event type = %T, want *MessageEvent", ev)
	}
	topic, ok := me.Msg.(*webapi.ChannelTopicMessage)
	if !ok {
		t.Fatalf("message type = %T, want *webapi.ChannelTopicMessage", me.Msg)
	}
	if topic.Topic != "launch day" {
		t.Errorf("topic = %q, want %q", topic.Topic, "launch day")
	}
}
