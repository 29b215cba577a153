package webapi

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeMessageStandard(t *testing.T) {
	raw := `{"type": "message", "ts": "1234567890.218332", "user": "U12345678",
		"text": "Hello world", "channel": "C12345678", "brand_new_field": 42}`

	m, err := DecodeMessage([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeMessage() error = %v", err)
	}

	std, ok := m.(*StandardMessage)
	if !ok {
		t.Fatalf("message type = %T, want *StandardMessage", m)
	}
	if std.Ts != "1234567890.218332" {
		t.Errorf("ts = %q, want %q", std.Ts, "1234567890.218332")
	}
	if std.User != "U12345678" {
		t.Errorf("user = %q, want %q", std.User, "U12345678")
	}
	if std.Text != "Hello world" {
		t.Errorf("text = %q, want %q", std.Text, "Hello world")
	}
	if std.Channel != "C12345678" {
		t.Errorf("channel = %q, want %q", std.Channel, "C12345678")
	}
}

func TestDecodeMessageSubtypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bot_message",
			raw:  `{"type": "message", "subtype": "bot_message", "ts": "1.000001", "text": "beep", "bot_id": "B1"}`,
			want: "bot_message",
		},
		{
			name: "me_message",
			raw:  `{"type": "message", "subtype": "me_message", "channel": "C1", "user": "U1", "text": "waves", "ts": "1.000001"}`,
			want: "me_message",
		},
		{
			name: "message_deleted",
			raw:  `{"type": "message", "subtype": "message_deleted", "hidden": true, "channel": "C1", "ts": "2.000002", "deleted_ts": "1.000001"}`,
			want: "message_deleted",
		},
		{
			name: "channel_join",
			raw:  `{"type": "message", "subtype": "channel_join", "ts": "1.000001", "user": "U1", "text": "<@U1> has joined"}`,
			want: "channel_join",
		},
		{
			name: "channel_topic",
			raw:  `{"type": "message", "subtype": "channel_topic", "ts": "1.000001", "user": "U1", "topic": "hi", "text": "set the topic"}`,
			want: "channel_topic",
		},
		{
			name: "group_name",
			raw:  `{"type": "message", "subtype": "group_name", "ts": "1.000001", "user": "U1", "old_name": "old", "name": "new", "text": "renamed"}`,
			want: "group_name",
		},
		{
			name: "file_share",
			raw:  `{"type": "message", "subtype": "file_share", "ts": "1.000001", "text": "shared", "file": {"id": "F1"}, "user": "U1", "upload": true}`,
			want: "file_share",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeMessage([]byte(tt.raw))
			if err != nil {
				t.Fatalf("DecodeMessage() error = %v", err)
			}
			if got := m.Subtype(); got != tt.want {
				t.Errorf("subtype = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeMessageUnknownSubtype(t *testing.T) {
	raw := `{"type": "message", "subtype": "hologram", "ts": "1.000001"}`

	_, err := DecodeMessage([]byte(raw))
	if err == nil {
		t.Fatal("DecodeMessage() error = nil, want error")
	}

	var decErr *Error
	if !errors.As(err, &decErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if decErr.Kind != ErrJSONDecode {
		t.Errorf("error kind = %v, want %v", decErr.Kind, ErrJSONDecode)
	}
	if !strings.Contains(decErr.Msg, "hologram") {
		t.Errorf("error message %q does not name the unknown subtype", decErr.Msg)
	}
	if decErr.Raw != raw {
		t.Errorf("error raw = %q, want the original frame", decErr.Raw)
	}
}

func TestDecodeMessageChangedNesting(t *testing.T) {
	raw := `{
		"type": "message", "subtype": "message_changed", "hidden": true,
		"channel": "C12345678", "ts": "2.000002",
		"message": {"type": "message", "user": "U1", "text": "edited!", "ts": "1.000001", "edited": {"user": "U1", "ts": "2.000002"}}
	}`

	m, err := DecodeMessage([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeMessage() error = %v", err)
	}

	changed, ok := m.(*MessageChanged)
	if !ok {
		t.Fatalf("message type = %T, want *MessageChanged", m)
	}
	if !changed.Hidden {
		t.Error("hidden = false, want true")
	}

	std, ok := changed.Message.(*StandardMessage)
	if !ok {
		t.Fatalf("nested message type = %T, want *StandardMessage", changed.Message)
	}
	if std.Text != "edited!" {
		t.Errorf("nested text = %q, want %q", std.Text, "edited!")
	}
	if std.Edited == nil || std.Edited.User != "U1" {
		t.Errorf("nested edited = %+v, want editor U1", std.Edited)
	}
}

func TestDecodePinnedItemForms(t *testing.T) {
	t.Run("with_item", func(t *testing.T) {
		raw := `{
			"type": "message", "subtype": "pinned_item", "user": "U1",
			"item_type": "F", "text": "pinned a file",
			"item": {"type": "file", "file": {"id": "F1", "title": "report"}},
			"channel": "C1", "ts": "1.000001"
		}`

		m, err := DecodeMessage([]byte(raw))
		if err != nil {
			t.Fatalf("DecodeMessage() error = %v", err)
		}
		pinned, ok := m.(*PinnedItemMessage)
		if !ok {
			t.Fatalf("message type = %T, want *PinnedItemMessage", m)
		}
		file, ok := pinned.Item.(*FileItem)
		if !ok {
			t.Fatalf("item type = %T, want *FileItem", pinned.Item)
		}
		if file.File.ID != "F1" {
			t.Errorf("file id = %q, want %q", file.File.ID, "F1")
		}
	})

	t.Run("attachments_only", func(t *testing.T) {
		raw := `{
			"type": "message", "subtype": "pinned_item", "user": "U1",
			"item_type": "C", "text": "pinned a message",
			"channel": "C1", "ts": "1.000001",
			"attachments": [{"text": "quoted", "fallback": "quoted"}]
		}`

		m, err := DecodeMessage([]byte(raw))
		if err != nil {
			t.Fatalf("DecodeMessage() error = %v", err)
		}
		pinned, ok := m.(*PinnedItemMessage)
		if !ok {
			t.Fatalf("message type = %T, want *PinnedItemMessage", m)
		}
		if pinned.Item != nil {
			t.Errorf("item = %+v, want nil for an attachments-only pin", pinned.Item)
		}
		if len(pinned.Attachments) != 1 {
			t.Fatalf("len(attachments) = %d, want 1", len(pinned.Attachments))
		}
	})
}

func TestMessagesUnmarshalFailsOnBadElement(t *testing.T) {
	raw := `[{"ts": "1.000001", "text": "fine"}, {"subtype": "hologram", "ts": "2.000002"}]`

	var ms Messages
	if err := ms.UnmarshalJSON([]byte(raw)); err == nil {
		t.Fatal("UnmarshalJSON() error = nil, want error")
	}
}
