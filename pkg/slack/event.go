package slack

import (
	"encoding/json"
	"fmt"

	"github.com/tzrikka/slackrtm/pkg/webapi"
)

// Event is the sum of frames the RTM stream delivers, discriminated
// by the required "type" field. Server acknowledgements of outbound
// messages are the one exception: they carry no "type", only "ok"
// and "reply_to", and surface as [MessageSent] or [MessageError].
type Event interface {
	// EventType returns the wire discriminator, or "" for the two
	// synthetic ack variants.
	EventType() string
}

// eventCtors maps each known "type" value to its variant. The
// "message" type is handled separately in DecodeEvent because its
// payload is a [webapi.Message] with its own subtype dispatch.
var eventCtors = map[string]func() Event{
	"hello":                   func() Event { return &Hello{} },
	"user_typing":             func() Event { return &UserTyping{} },
	"channel_marked":          func() Event { return &ChannelMarked{} },
	"channel_created":         func() Event { return &ChannelCreated{} },
	"channel_joined":          func() Event { return &ChannelJoined{} },
	"channel_left":            func() Event { return &ChannelLeft{} },
	"channel_deleted":         func() Event { return &ChannelDeleted{} },
	"channel_rename":          func() Event { return &ChannelRename{} },
	"channel_archive":         func() Event { return &ChannelArchive{} },
	"channel_unarchive":       func() Event { return &ChannelUnarchive{} },
	"channel_history_changed": func() Event { return &ChannelHistoryChanged{} },
	"im_created":              func() Event { return &ImCreated{} },
	"im_open":                 func() Event { return &ImOpen{} },
	"im_close":                func() Event { return &ImClose{} },
	"im_marked":               func() Event { return &ImMarked{} },
	"im_history_changed":      func() Event { return &ImHistoryChanged{} },
	"group_joined":            func() Event { return &GroupJoined{} },
	"group_left":              func() Event { return &GroupLeft{} },
	"group_open":              func() Event { return &GroupOpen{} },
	"group_close":             func() Event { return &GroupClose{} },
	"group_archive":           func() Event { return &GroupArchive{} },
	"group_unarchive":         func() Event { return &GroupUnarchive{} },
	"group_rename":            func() Event { return &GroupRename{} },
	"group_marked":            func() Event { return &GroupMarked{} },
	"group_history_changed":   func() Event { return &GroupHistoryChanged{} },
	"file_created":            func() Event { return &FileCreated{} },
	"file_shared":             func() Event { return &FileShared{} },
	"file_unshared":           func() Event { return &FileUnshared{} },
	"file_public":             func() Event { return &FilePublic{} },
	"file_private":            func() Event { return &FilePrivate{} },
	"file_change":             func() Event { return &FileChange{} },
	"file_deleted":            func() Event { return &FileDeleted{} },
	"file_comment_added":      func() Event { return &FileCommentAdded{} },
	"file_comment_edited":     func() Event { return &FileCommentEdited{} },
	"file_comment_deleted":    func() Event { return &FileCommentDeleted{} },
	"pin_added":               func() Event { return &PinAdded{} },
	"pin_removed":             func() Event { return &PinRemoved{} },
	"presence_change":         func() Event { return &PresenceChange{} },
	"manual_presence_change":  func() Event { return &ManualPresenceChange{} },
	"pref_change":             func() Event { return &PrefChange{} },
	"user_change":             func() Event { return &UserChange{} },
	"team_join":               func() Event { return &TeamJoin{} },
	"star_added":              func() Event { return &StarAdded{} },
	"star_removed":            func() Event { return &StarRemoved{} },
	"reaction_added":          func() Event { return &ReactionAdded{} },
	"reaction_removed":        func() Event { return &ReactionRemoved{} },
	"emoji_changed":           func() Event { return &EmojiChanged{} },
	"commands_changed":        func() Event { return &CommandsChanged{} },
	"team_plan_change":        func() Event { return &TeamPlanChange{} },
	"team_pref_change":        func() Event { return &TeamPrefChange{} },
	"team_rename":             func() Event { return &TeamRename{} },
	"team_domain_change":      func() Event { return &TeamDomainChange{} },
	"email_domain_changed":    func() Event { return &EmailDomainChanged{} },
	"bot_added":               func() Event { return &BotAdded{} },
	"bot_changed":             func() Event { return &BotChanged{} },
	"accounts_changed":        func() Event { return &AccountsChanged{} },
	"team_migration_started":  func() Event { return &TeamMigrationStarted{} },
	"reconnect_url":           func() Event { return &ReconnectURL{} },
}

// DecodeEvent decodes one RTM frame. Unknown event types are a decode
// failure carrying the offending string; unknown fields within a
// recognized variant are ignored.
func DecodeEvent(raw []byte) (Event, error) {
	var probe struct {
		Type    *string `json:"type"`
		Ok      *bool   `json:"ok"`
		ReplyTo *int    `json:"reply_to"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &Error{Kind: ErrJSONParse, Msg: "event is not a JSON object", Raw: string(raw), Err: err}
	}

	if probe.Type == nil {
		// Acks have no "type", only "ok" and "reply_to".
		if probe.Ok == nil || probe.ReplyTo == nil {
			return nil, &Error{Kind: ErrJSONDecode, Msg: `event has no "type" field and is not an ack`, Raw: string(raw)}
		}
		var ev Event
		if *probe.Ok {
			ev = &MessageSent{}
		} else {
			ev = &MessageError{}
		}
		if err := json.Unmarshal(raw, ev); err != nil {
			return nil, &Error{Kind: ErrJSONDecode, Msg: "failed to decode message ack", Raw: string(raw), Err: err}
		}
		return ev, nil
	}

	if *probe.Type == "message" {
		m, err := webapi.DecodeMessage(raw)
		if err != nil {
			return nil, err
		}
		return &MessageEvent{Msg: m}, nil
	}

	ctor, found := eventCtors[*probe.Type]
	if !found {
		return nil, &Error{
			Kind: ErrJSONDecode,
			Msg:  fmt.Sprintf("unknown event type: %q", *probe.Type),
			Raw:  string(raw),
		}
	}

	ev := ctor()
	if err := json.Unmarshal(raw, ev); err != nil {
		return nil, &Error{Kind: ErrJSONDecode, Msg: "failed to decode event", Raw: string(raw), Err: err}
	}
	return ev, nil
}

// Hello is sent by the server when the connection is ready.
type Hello struct{}

func (e *Hello) EventType() string { return "hello" }

// MessageEvent wraps a chat message of any subtype.
type MessageEvent struct {
	Msg webapi.Message
}

func (e *MessageEvent) EventType() string { return "message" }

// UserTyping indicates a user is typing in a channel.
type UserTyping struct {
	Channel string `json:"channel"`
	User    string `json:"user"`
}

func (e *UserTyping) EventType() string { return "user_typing" }

// ChannelMarked confirms a channel read-cursor update.
type ChannelMarked struct {
	Channel string `json:"channel"`
	Ts      string `json:"ts"`
}

func (e *ChannelMarked) EventType() string { return "channel_marked" }

// ChannelCreated announces a new channel.
type ChannelCreated struct {
	Channel webapi.Channel `json:"channel"`
}

func (e *ChannelCreated) EventType() string { return "channel_created" }

// ChannelJoined indicates the calling user joined a channel.
type ChannelJoined struct {
	Channel webapi.Channel `json:"channel"`
}

func (e *ChannelJoined) EventType() string { return "channel_joined" }

// ChannelLeft indicates the calling user left a channel.
type ChannelLeft struct {
	Channel string `json:"channel"`
}

func (e *ChannelLeft) EventType() string { return "channel_left" }

// ChannelDeleted announces a channel deletion.
type ChannelDeleted struct {
	Channel string `json:"channel"`
}

func (e *ChannelDeleted) EventType() string { return "channel_deleted" }

// ChannelRename announces a channel rename.
type ChannelRename struct {
	Channel webapi.Channel `json:"channel"`
}

func (e *ChannelRename) EventType() string { return "channel_rename" }

// ChannelArchive announces a channel was archived.
type ChannelArchive struct {
	Channel string `json:"channel"`
	User    string `json:"user"`
}

func (e *ChannelArchive) EventType() string { return "channel_archive" }

// ChannelUnarchive announces a channel was unarchived.
type ChannelUnarchive struct {
	Channel string `json:"channel"`
	User    string `json:"user"`
}

func (e *ChannelUnarchive) EventType() string { return "channel_unarchive" }

// ChannelHistoryChanged indicates bulk changes to a channel's history.
type ChannelHistoryChanged struct {
	Latest  string `json:"latest"`
	Ts      string `json:"ts"`
	EventTs string `json:"event_ts"`
}

func (e *ChannelHistoryChanged) EventType() string { return "channel_history_changed" }

// ImCreated announces a new direct message channel.
type ImCreated struct {
	User    string         `json:"user"`
	Channel webapi.Channel `json:"channel"`
}

func (e *ImCreated) EventType() string { return "im_created" }

// ImOpen indicates the calling user opened a direct message channel.
type ImOpen struct {
	User    string `json:"user"`
	Channel string `json:"channel"`
}

func (e *ImOpen) EventType() string { return "im_open" }

// ImClose indicates the calling user closed a direct message channel.
type ImClose struct {
	User    string `json:"user"`
	Channel string `json:"channel"`
}

func (e *ImClose) EventType() string { return "im_close" }

// ImMarked confirms a direct message read-cursor update.
type ImMarked struct {
	Channel string `json:"channel"`
	Ts      string `json:"ts"`
}

func (e *ImMarked) EventType() string { return "im_marked" }

// ImHistoryChanged indicates bulk changes to an IM's history.
type ImHistoryChanged struct {
	Latest  string `json:"latest"`
	Ts      string `json:"ts"`
	EventTs string `json:"event_ts"`
}

func (e *ImHistoryChanged) EventType() string { return "im_history_changed" }

// GroupJoined indicates the calling user joined a private group.
type GroupJoined struct {
	Channel webapi.Channel `json:"channel"`
}

func (e *GroupJoined) EventType() string { return "group_joined" }

// GroupLeft indicates the calling user left a private group.
type GroupLeft struct {
	Channel webapi.Channel `json:"channel"`
}

func (e *GroupLeft) EventType() string { return "group_left" }

// GroupOpen indicates the calling user opened a private group.
type GroupOpen struct {
	User    string `json:"user"`
	Channel string `json:"channel"`
}

func (e *GroupOpen) EventType() string { return "group_open" }

// GroupClose indicates the calling user closed a private group.
type GroupClose struct {
	User    string `json:"user"`
	Channel string `json:"channel"`
}

func (e *GroupClose) EventType() string { return "group_close" }

// GroupArchive announces a private group was archived.
type GroupArchive struct {
	Channel string `json:"channel"`
}

func (e *GroupArchive) EventType() string { return "group_archive" }

// GroupUnarchive announces a private group was unarchived.
type GroupUnarchive struct {
	Channel string `json:"channel"`
}

func (e *GroupUnarchive) EventType() string { return "group_unarchive" }

// GroupRename announces a private group rename.
type GroupRename struct {
	Channel webapi.Channel `json:"channel"`
}

func (e *GroupRename) EventType() string { return "group_rename" }

// GroupMarked confirms a private group read-cursor update.
type GroupMarked struct {
	Channel string `json:"channel"`
	Ts      string `json:"ts"`
}

func (e *GroupMarked) EventType() string { return "group_marked" }

// GroupHistoryChanged indicates bulk changes to a group's history.
type GroupHistoryChanged struct {
	Latest  string `json:"latest"`
	Ts      string `json:"ts"`
	EventTs string `json:"event_ts"`
}

func (e *GroupHistoryChanged) EventType() string { return "group_history_changed" }

// FileCreated announces a new file.
type FileCreated struct {
	File webapi.File `json:"file"`
}

func (e *FileCreated) EventType() string { return "file_created" }

// FileShared announces a file was shared.
type FileShared struct {
	File webapi.File `json:"file"`
}

func (e *FileShared) EventType() string { return "file_shared" }

// FileUnshared announces a file was unshared.
type FileUnshared struct {
	File webapi.File `json:"file"`
}

func (e *FileUnshared) EventType() string { return "file_unshared" }

// FilePublic announces a file was made public.
type FilePublic struct {
	File webapi.File `json:"file"`
}

func (e *FilePublic) EventType() string { return "file_public" }

// FilePrivate announces a file was made private; only the file id is
// included.
type FilePrivate struct {
	File string `json:"file"`
}

func (e *FilePrivate) EventType() string { return "file_private" }

// FileChange announces a change to a file's properties.
type FileChange struct {
	File webapi.File `json:"file"`
}

func (e *FileChange) EventType() string { return "file_change" }

// FileDeleted announces a file deletion.
type FileDeleted struct {
	FileID  string `json:"file_id"`
	EventTs string `json:"event_ts"`
}

func (e *FileDeleted) EventType() string { return "file_deleted" }

// FileCommentAdded announces a new comment on a file.
type FileCommentAdded struct {
	File    webapi.File    `json:"file"`
	Comment webapi.Comment `json:"comment"`
}

func (e *FileCommentAdded) EventType() string { return "file_comment_added" }

// FileCommentEdited announces an edit to a file comment.
type FileCommentEdited struct {
	File    webapi.File    `json:"file"`
	Comment webapi.Comment `json:"comment"`
}

func (e *FileCommentEdited) EventType() string { return "file_comment_edited" }

// FileCommentDeleted announces a file comment deletion; only the
// comment id is included.
type FileCommentDeleted struct {
	File    webapi.File `json:"file"`
	Comment string      `json:"comment"`
}

func (e *FileCommentDeleted) EventType() string { return "file_comment_deleted" }

// PinAdded announces a new pin in a channel.
type PinAdded struct {
	User      string      `json:"user"`
	ChannelID string      `json:"channel_id"`
	Item      webapi.Item `json:"-"`
	EventTs   string      `json:"event_ts"`
}

func (e *PinAdded) EventType() string { return "pin_added" }

func (e *PinAdded) UnmarshalJSON(b []byte) error {
	type alias PinAdded
	aux := struct {
		*alias
		Item json.RawMessage `json:"item"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeItemField(aux.Item, &e.Item)
}

// PinRemoved announces a pin removal.
type PinRemoved struct {
	User      string      `json:"user"`
	ChannelID string      `json:"channel_id"`
	Item      webapi.Item `json:"-"`
	HasPins   bool        `json:"has_pins"`
	EventTs   string      `json:"event_ts"`
}

func (e *PinRemoved) EventType() string { return "pin_removed" }

func (e *PinRemoved) UnmarshalJSON(b []byte) error {
	type alias PinRemoved
	aux := struct {
		*alias
		Item json.RawMessage `json:"item"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeItemField(aux.Item, &e.Item)
}

// PresenceChange announces a user presence change.
type PresenceChange struct {
	User     string `json:"user"`
	Presence string `json:"presence"`
}

func (e *PresenceChange) EventType() string { return "presence_change" }

// ManualPresenceChange announces the calling user manually changed
// their presence.
type ManualPresenceChange struct {
	Presence string `json:"presence"`
}

func (e *ManualPresenceChange) EventType() string { return "manual_presence_change" }

// PrefChange announces a change to one of the calling user's
// preferences.
type PrefChange struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func (e *PrefChange) EventType() string { return "pref_change" }

// UserChange announces a change to a team member's record.
type UserChange struct {
	User webapi.User `json:"user"`
}

func (e *UserChange) EventType() string { return "user_change" }

// TeamJoin announces a new team member.
type TeamJoin struct {
	User webapi.User `json:"user"`
}

func (e *TeamJoin) EventType() string { return "team_join" }

// StarAdded announces an item was starred.
type StarAdded struct {
	User    string             `json:"user"`
	Item    webapi.StarredItem `json:"-"`
	EventTs string             `json:"event_ts"`
}

func (e *StarAdded) EventType() string { return "star_added" }

func (e *StarAdded) UnmarshalJSON(b []byte) error {
	type alias StarAdded
	aux := struct {
		*alias
		Item json.RawMessage `json:"item"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeStarredItemField(aux.Item, &e.Item)
}

// StarRemoved announces an item was unstarred.
type StarRemoved struct {
	User    string             `json:"user"`
	Item    webapi.StarredItem `json:"-"`
	EventTs string             `json:"event_ts"`
}

func (e *StarRemoved) EventType() string { return "star_removed" }

func (e *StarRemoved) UnmarshalJSON(b []byte) error {
	type alias StarRemoved
	aux := struct {
		*alias
		Item json.RawMessage `json:"item"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeStarredItemField(aux.Item, &e.Item)
}

// ReactionAdded announces a reaction on an item.
type ReactionAdded struct {
	User     string      `json:"user"`
	Reaction string      `json:"reaction"`
	Item     webapi.Item `json:"-"`
	ItemUser string      `json:"item_user"`
	EventTs  string      `json:"event_ts"`
}

func (e *ReactionAdded) EventType() string { return "reaction_added" }

func (e *ReactionAdded) UnmarshalJSON(b []byte) error {
	type alias ReactionAdded
	aux := struct {
		*alias
		Item json.RawMessage `json:"item"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeItemField(aux.Item, &e.Item)
}

// ReactionRemoved announces a reaction was removed from an item.
type ReactionRemoved struct {
	User     string      `json:"user"`
	Reaction string      `json:"reaction"`
	Item     webapi.Item `json:"-"`
	ItemUser string      `json:"item_user"`
	EventTs  string      `json:"event_ts"`
}

func (e *ReactionRemoved) EventType() string { return "reaction_removed" }

func (e *ReactionRemoved) UnmarshalJSON(b []byte) error {
	type alias ReactionRemoved
	aux := struct {
		*alias
		Item json.RawMessage `json:"item"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeItemField(aux.Item, &e.Item)
}

// EmojiChanged announces a change to the team's custom emoji.
type EmojiChanged struct {
	EventTs string `json:"event_ts"`
}

func (e *EmojiChanged) EventType() string { return "emoji_changed" }

// CommandsChanged announces a change to the team's slash commands.
type CommandsChanged struct {
	EventTs string `json:"event_ts"`
}

func (e *CommandsChanged) EventType() string { return "commands_changed" }

// TeamPlanChange announces a change to the team's billing plan.
type TeamPlanChange struct {
	Plan string `json:"plan"`
}

func (e *TeamPlanChange) EventType() string { return "team_plan_change" }

// TeamPrefChange announces a change to a team preference.
type TeamPrefChange struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func (e *TeamPrefChange) EventType() string { return "team_pref_change" }

// TeamRename announces a team rename.
type TeamRename struct {
	Name string `json:"name"`
}

func (e *TeamRename) EventType() string { return "team_rename" }

// TeamDomainChange announces a change to the team's Slack domain.
type TeamDomainChange struct {
	URL    string `json:"url"`
	Domain string `json:"domain"`
}

func (e *TeamDomainChange) EventType() string { return "team_domain_change" }

// EmailDomainChanged announces a change to the team's email domain
// restriction.
type EmailDomainChanged struct {
	EmailDomain string `json:"email_domain"`
	EventTs     string `json:"event_ts"`
}

func (e *EmailDomainChanged) EventType() string { return "email_domain_changed" }

// BotAdded announces a new bot integration.
type BotAdded struct {
	Bot webapi.Bot `json:"bot"`
}

func (e *BotAdded) EventType() string { return "bot_added" }

// BotChanged announces a change to a bot integration.
type BotChanged struct {
	Bot webapi.Bot `json:"bot"`
}

func (e *BotChanged) EventType() string { return "bot_changed" }

// AccountsChanged signals that the list of accounts a user is signed
// into has changed.
type AccountsChanged struct{}

func (e *AccountsChanged) EventType() string { return "accounts_changed" }

// TeamMigrationStarted indicates the team is being migrated between
// servers; the caller should reconnect.
type TeamMigrationStarted struct{}

func (e *TeamMigrationStarted) EventType() string { return "team_migration_started" }

// ReconnectURL carries an experimental reconnection URL; it is
// announced but its payload is not modeled.
type ReconnectURL struct{}

func (e *ReconnectURL) EventType() string { return "reconnect_url" }

// MessageSent is a synthetic variant: the server's confirmation of an
// outbound message, correlated by ReplyTo matching the envelope id.
type MessageSent struct {
	ReplyTo int    `json:"reply_to"`
	Ts      string `json:"ts"`
	Text    string `json:"text"`
}

func (e *MessageSent) EventType() string { return "" }

// MessageErrorDetail is the nested error object of a failed send.
type MessageErrorDetail struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// MessageError is a synthetic variant: the server's rejection of an
// outbound message, correlated by ReplyTo matching the envelope id.
type MessageError struct {
	ReplyTo int                `json:"reply_to"`
	Error   MessageErrorDetail `json:"error"`
}

func (e *MessageError) EventType() string { return "" }

// decodeItemField decodes an "item" payload into dst when present.
func decodeItemField(raw json.RawMessage, dst *webapi.Item) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	it, err := webapi.DecodeItem(raw)
	if err != nil {
		return err
	}
	*dst = it
	return nil
}

// decodeStarredItemField decodes an "item" payload into dst when
// present.
func decodeStarredItemField(raw json.RawMessage, dst *webapi.StarredItem) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	it, err := webapi.DecodeStarredItem(raw)
	if err != nil {
		return err
	}
	*dst = it
	return nil
}
