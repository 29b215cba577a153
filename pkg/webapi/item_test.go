package webapi

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeItem(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		raw := `{"type": "message", "channel": "C2147483705",
			"message": {"type": "message", "ts": "12345", "user": "123", "text": "something"}}`

		it, err := DecodeItem([]byte(raw))
		if err != nil {
			t.Fatalf("DecodeItem() error = %v", err)
		}
		mi, ok := it.(*MessageItem)
		if !ok {
			t.Fatalf("item type = %T, want *MessageItem", it)
		}
		if mi.Channel != "C2147483705" {
			t.Errorf("channel = %q, want %q", mi.Channel, "C2147483705")
		}
		std, ok := mi.Message.(*StandardMessage)
		if !ok {
			t.Fatalf("nested message type = %T, want *StandardMessage", mi.Message)
		}
		if std.Text != "something" {
			t.Errorf("nested text = %q, want %q", std.Text, "something")
		}
	})

	t.Run("file", func(t *testing.T) {
		raw := `{"type": "file", "file": {"id": "F12345678", "name": "test.txt"}}`

		it, err := DecodeItem([]byte(raw))
		if err != nil {
			t.Fatalf("DecodeItem() error = %v", err)
		}
		fi, ok := it.(*FileItem)
		if !ok {
			t.Fatalf("item type = %T, want *FileItem", it)
		}
		if fi.File.ID != "F12345678" {
			t.Errorf("file id = %q, want %q", fi.File.ID, "F12345678")
		}
	})

	t.Run("file_comment", func(t *testing.T) {
		raw := `{"type": "file_comment", "file": {"id": "F12345678"},
			"comment": {"id": "Fc12345678", "user": "U1", "comment": "nice"}}`

		it, err := DecodeItem([]byte(raw))
		if err != nil {
			t.Fatalf("DecodeItem() error = %v", err)
		}
		fc, ok := it.(*FileCommentItem)
		if !ok {
			t.Fatalf("item type = %T, want *FileCommentItem", it)
		}
		if fc.Comment.Comment != "nice" {
			t.Errorf("comment = %q, want %q", fc.Comment.Comment, "nice")
		}
	})
}

func TestDecodeItemUnknownType(t *testing.T) {
	raw := `{"type": "sticker", "sticker": {"id": "S1"}}`

	_, err := DecodeItem([]byte(raw))
	if err == nil {
		t.Fatal("DecodeItem() error = nil, want error")
	}

	var decErr *Error
	if !errors.As(err, &decErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if decErr.Kind != ErrJSONDecode {
		t.Errorf("error kind = %v, want %v", decErr.Kind, ErrJSONDecode)
	}
	if !strings.Contains(decErr.Msg, "sticker") {
		t.Errorf("error message %q does not name the unknown type", decErr.Msg)
	}
}

func TestDecodeStarredItem(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "message",
			raw:  `{"type": "message", "channel": "C1", "message": {"ts": "1.000001", "text": "starred"}}`,
			want: "message",
		},
		{
			name: "file",
			raw:  `{"type": "file", "file": {"id": "F1"}}`,
			want: "file",
		},
		{
			name: "file_comment",
			raw:  `{"type": "file_comment", "file": {"id": "F1"}, "comment": {"id": "Fc1"}}`,
			want: "file_comment",
		},
		{
			name: "channel",
			raw:  `{"type": "channel", "channel": "C1"}`,
			want: "channel",
		},
		{
			name: "group",
			raw:  `{"type": "group", "group": "G1"}`,
			want: "group",
		},
		{
			name: "im",
			raw:  `{"type": "im", "channel": "D1"}`,
			want: "im",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := DecodeStarredItem([]byte(tt.raw))
			if err != nil {
				t.Fatalf("DecodeStarredItem() error = %v", err)
			}
			if got := it.StarType(); got != tt.want {
				t.Errorf("star type = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeStarredItemUnknownType(t *testing.T) {
	_, err := DecodeStarredItem([]byte(`{"type": "usergroup"}`))
	if err == nil {
		t.Fatal("DecodeStarredItem() error = nil, want error")
	}

	var decErr *Error
	if !errors.As(err, &decErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if decErr.Kind != ErrJSONDecode {
		t.Errorf("error kind = %v, want %v", decErr.Kind, ErrJSONDecode)
	}
}

func TestItemsUnmarshal(t *testing.T) {
	raw := `[
		{"type": "file", "file": {"id": "F1"}},
		{"type": "message", "channel": "C1", "message": {"ts": "1.000001", "text": "pinned"}}
	]`

	var items Items
	if err := items.UnmarshalJSON([]byte(raw)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if _, ok := items[0].(*FileItem); !ok {
		t.Errorf("items[0] type = %T, want *FileItem", items[0])
	}
	if _, ok := items[1].(*MessageItem); !ok {
		t.Errorf("items[1] type = %T, want *MessageItem", items[1])
	}
}
