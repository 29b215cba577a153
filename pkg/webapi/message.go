package webapi

import (
	"encoding/json"
	"fmt"
)

// Message is the sum of Slack message event variants, discriminated
// by the optional "subtype" field. An absent subtype means
// [StandardMessage]; the remaining variants form a closed set.
// See https://api.slack.com/events/message.
type Message interface {
	// Subtype returns the wire discriminator, or "" for a standard
	// message.
	Subtype() string
}

// messageCtors maps each known "subtype" value to its variant. An
// absent subtype is handled separately in DecodeMessage.
var messageCtors = map[string]func() Message{
	"bot_message":       func() Message { return &BotMessage{} },
	"me_message":        func() Message { return &MeMessage{} },
	"message_changed":   func() Message { return &MessageChanged{} },
	"message_deleted":   func() Message { return &MessageDeleted{} },
	"channel_join":      func() Message { return &ChannelJoinMessage{} },
	"channel_leave":     func() Message { return &ChannelLeaveMessage{} },
	"channel_topic":     func() Message { return &ChannelTopicMessage{} },
	"channel_purpose":   func() Message { return &ChannelPurposeMessage{} },
	"channel_name":      func() Message { return &ChannelNameMessage{} },
	"channel_archive":   func() Message { return &ChannelArchiveMessage{} },
	"channel_unarchive": func() Message { return &ChannelUnarchiveMessage{} },
	"group_join":        func() Message { return &GroupJoinMessage{} },
	"group_leave":       func() Message { return &GroupLeaveMessage{} },
	"group_topic":       func() Message { return &GroupTopicMessage{} },
	"group_purpose":     func() Message { return &GroupPurposeMessage{} },
	"group_name":        func() Message { return &GroupNameMessage{} },
	"group_archive":     func() Message { return &GroupArchiveMessage{} },
	"group_unarchive":   func() Message { return &GroupUnarchiveMessage{} },
	"file_share":        func() Message { return &FileShareMessage{} },
	"file_comment":      func() Message { return &FileCommentMessage{} },
	"file_mention":      func() Message { return &FileMentionMessage{} },
	"pinned_item":       func() Message { return &PinnedItemMessage{} },
	"unpinned_item":     func() Message { return &UnpinnedItemMessage{} },
}

// DecodeMessage decodes one message event. Unknown subtypes are a
// decode failure carrying the offending string; unknown fields within
// a recognized variant are ignored, so server schema additions don't
// break existing clients.
func DecodeMessage(raw []byte) (Message, error) {
	var probe struct {
		Subtype *string `json:"subtype"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &Error{Kind: ErrJSONParse, Msg: "message is not a JSON object", Raw: string(raw), Err: err}
	}

	var m Message
	if probe.Subtype == nil {
		m = &StandardMessage{}
	} else {
		ctor, found := messageCtors[*probe.Subtype]
		if !found {
			return nil, &Error{
				Kind: ErrJSONDecode,
				Msg:  fmt.Sprintf("unknown message subtype: %q", *probe.Subtype),
				Raw:  string(raw),
			}
		}
		m = ctor()
	}

	if err := json.Unmarshal(raw, m); err != nil {
		return nil, &Error{Kind: ErrJSONDecode, Msg: "failed to decode message", Raw: string(raw), Err: err}
	}
	return m, nil
}

// Messages decodes a JSON array of message events, e.g. in history
// responses.
type Messages []Message

func (ms *Messages) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}
	out := make(Messages, 0, len(raws))
	for _, r := range raws {
		m, err := DecodeMessage(r)
		if err != nil {
			return err
		}
		out = append(out, m)
	}
	*ms = out
	return nil
}

// Edited is the metadata attached to an edited message.
type Edited struct {
	User string `json:"user"`
	Ts   string `json:"ts"`
}

// StandardMessage is a plain chat message to a channel, group, or IM
// (no subtype on the wire).
type StandardMessage struct {
	Ts          string       `json:"ts"`
	Channel     string       `json:"channel,omitempty"`
	User        string       `json:"user,omitempty"`
	Text        string       `json:"text,omitempty"`
	IsStarred   *bool        `json:"is_starred,omitempty"`
	PinnedTo    []string     `json:"pinned_to,omitempty"`
	Reactions   []Reaction   `json:"reactions,omitempty"`
	Edited      *Edited      `json:"edited,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

func (m *StandardMessage) Subtype() string { return "" }

// BotMessage wraps the "bot_message" subtype.
type BotMessage struct {
	Ts       string            `json:"ts"`
	Text     string            `json:"text"`
	BotID    string            `json:"bot_id"`
	Username string            `json:"username,omitempty"`
	Icons    map[string]string `json:"icons,omitempty"`
}

func (m *BotMessage) Subtype() string { return "bot_message" }

// MeMessage wraps the "me_message" subtype (/me).
type MeMessage struct {
	Channel string `json:"channel"`
	User    string `json:"user"`
	Text    string `json:"text"`
	Ts      string `json:"ts"`
}

func (m *MeMessage) Subtype() string { return "me_message" }

// MessageChanged wraps the "message_changed" subtype. The nested
// message is itself a full [Message] (recursion is permitted).
type MessageChanged struct {
	Hidden  bool    `json:"hidden"`
	Channel string  `json:"channel"`
	Ts      string  `json:"ts"`
	Message Message `json:"-"`
}

func (m *MessageChanged) Subtype() string { return "message_changed" }

func (m *MessageChanged) UnmarshalJSON(b []byte) error {
	type alias MessageChanged
	aux := struct {
		*alias
		Message json.RawMessage `json:"message"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.Message) > 0 && string(aux.Message) != "null" {
		nested, err := DecodeMessage(aux.Message)
		if err != nil {
			return err
		}
		m.Message = nested
	}
	return nil
}

// MessageDeleted wraps the "message_deleted" subtype.
type MessageDeleted struct {
	Hidden    bool   `json:"hidden"`
	Channel   string `json:"channel"`
	Ts        string `json:"ts"`
	DeletedTs string `json:"deleted_ts"`
}

func (m *MessageDeleted) Subtype() string { return "message_deleted" }

// ChannelJoinMessage wraps the "channel_join" subtype.
type ChannelJoinMessage struct {
	Ts      string `json:"ts"`
	User    string `json:"user"`
	Text    string `json:"text"`
	Inviter string `json:"inviter,omitempty"`
}

func (m *ChannelJoinMessage) Subtype() string { return "channel_join" }

// ChannelLeaveMessage wraps the "channel_leave" subtype.
type ChannelLeaveMessage struct {
	Ts   string `json:"ts"`
	User string `json:"user"`
	Text string `json:"text"`
}

func (m *ChannelLeaveMessage) Subtype() string { return "channel_leave" }

// ChannelTopicMessage wraps the "channel_topic" subtype.
type ChannelTopicMessage struct {
	Ts    string `json:"ts"`
	User  string `json:"user"`
	Topic string `json:"topic"`
	Text  string `json:"text"`
}

func (m *ChannelTopicMessage) Subtype() string { return "channel_topic" }

// ChannelPurposeMessage wraps the "channel_purpose" subtype.
type ChannelPurposeMessage struct {
	Ts      string `json:"ts"`
	User    string `json:"user"`
	Purpose string `json:"purpose"`
	Text    string `json:"text"`
}

func (m *ChannelPurposeMessage) Subtype() string { return "channel_purpose" }

// ChannelNameMessage wraps the "channel_name" subtype.
type ChannelNameMessage struct {
	Ts      string `json:"ts"`
	User    string `json:"user"`
	OldName string `json:"old_name"`
	Name    string `json:"name"`
	Text    string `json:"text"`
}

func (m *ChannelNameMessage) Subtype() string { return "channel_name" }

// ChannelArchiveMessage wraps the "channel_archive" subtype.
type ChannelArchiveMessage struct {
	Ts      string   `json:"ts"`
	Text    string   `json:"text"`
	User    string   `json:"user"`
	Members []string `json:"members,omitempty"`
}

func (m *ChannelArchiveMessage) Subtype() string { return "channel_archive" }

// ChannelUnarchiveMessage wraps the "channel_unarchive" subtype.
type ChannelUnarchiveMessage struct {
	Ts   string `json:"ts"`
	Text string `json:"text"`
	User string `json:"user"`
}

func (m *ChannelUnarchiveMessage) Subtype() string { return "channel_unarchive" }

// GroupJoinMessage wraps the "group_join" subtype.
type GroupJoinMessage struct {
	Ts      string `json:"ts"`
	User    string `json:"user"`
	Text    string `json:"text"`
	Inviter string `json:"inviter,omitempty"`
}

func (m *GroupJoinMessage) Subtype() string { return "group_join" }

// GroupLeaveMessage wraps the "group_leave" subtype.
type GroupLeaveMessage struct {
	Ts   string `json:"ts"`
	User string `json:"user"`
	Text string `json:"text"`
}

func (m *GroupLeaveMessage) Subtype() string { return "group_leave" }

// GroupTopicMessage wraps the "group_topic" subtype.
type GroupTopicMessage struct {
	Ts    string `json:"ts"`
	User  string `json:"user"`
	Topic string `json:"topic"`
	Text  string `json:"text"`
}

func (m *GroupTopicMessage) Subtype() string { return "group_topic" }

// GroupPurposeMessage wraps the "group_purpose" subtype.
type GroupPurposeMessage struct {
	Ts      string `json:"ts"`
	User    string `json:"user"`
	Purpose string `json:"purpose"`
	Text    string `json:"text"`
}

func (m *GroupPurposeMessage) Subtype() string { return "group_purpose" }

// GroupNameMessage wraps the "group_name" subtype.
type GroupNameMessage struct {
	Ts      string `json:"ts"`
	User    string `json:"user"`
	OldName string `json:"old_name"`
	Name    string `json:"name"`
	Text    string `json:"text"`
}

func (m *GroupNameMessage) Subtype() string { return "group_name" }

// GroupArchiveMessage wraps the "group_archive" subtype.
type GroupArchiveMessage struct {
	Ts      string   `json:"ts"`
	Text    string   `json:"text"`
	User    string   `json:"user"`
	Members []string `json:"members,omitempty"`
}

func (m *GroupArchiveMessage) Subtype() string { return "group_archive" }

// GroupUnarchiveMessage wraps the "group_unarchive" subtype.
type GroupUnarchiveMessage struct {
	Ts   string `json:"ts"`
	Text string `json:"text"`
	User string `json:"user"`
}

func (m *GroupUnarchiveMessage) Subtype() string { return "group_unarchive" }

// FileShareMessage wraps the "file_share" subtype.
type FileShareMessage struct {
	Ts     string `json:"ts"`
	Text   string `json:"text"`
	File   File   `json:"file"`
	User   string `json:"user"`
	Upload bool   `json:"upload"`
}

func (m *FileShareMessage) Subtype() string { return "file_share" }

// FileCommentMessage wraps the "file_comment" subtype.
type FileCommentMessage struct {
	Ts      string  `json:"ts"`
	Text    string  `json:"text"`
	File    File    `json:"file"`
	Comment Comment `json:"comment"`
}

func (m *FileCommentMessage) Subtype() string { return "file_comment" }

// FileMentionMessage wraps the "file_mention" subtype.
type FileMentionMessage struct {
	Ts   string `json:"ts"`
	Text string `json:"text"`
	File File   `json:"file"`
	User string `json:"user"`
}

func (m *FileMentionMessage) Subtype() string { return "file_mention" }

// PinnedItemMessage wraps the "pinned_item" subtype. Item is nil for
// attachments-only pins, which arrive without a nested "item".
type PinnedItemMessage struct {
	User        string       `json:"user"`
	ItemType    string       `json:"item_type"`
	Text        string       `json:"text"`
	Item        Item         `json:"-"`
	Channel     string       `json:"channel"`
	Ts          string       `json:"ts"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

func (m *PinnedItemMessage) Subtype() string { return "pinned_item" }

func (m *PinnedItemMessage) UnmarshalJSON(b []byte) error {
	type alias PinnedItemMessage
	aux := struct {
		*alias
		Item json.RawMessage `json:"item"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeOptionalItem(aux.Item, &m.Item)
}

// UnpinnedItemMessage wraps the "unpinned_item" subtype. Like
// [PinnedItemMessage], the nested item may be absent.
type UnpinnedItemMessage struct {
	User        string       `json:"user"`
	ItemType    string       `json:"item_type"`
	Text        string       `json:"text"`
	Item        Item         `json:"-"`
	Channel     string       `json:"channel"`
	Ts          string       `json:"ts"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

func (m *UnpinnedItemMessage) Subtype() string { return "unpinned_item" }

func (m *UnpinnedItemMessage) UnmarshalJSON(b []byte) error {
	type alias UnpinnedItemMessage
	aux := struct {
		*alias
		Item json.RawMessage `json:"item"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeOptionalItem(aux.Item, &m.Item)
}
