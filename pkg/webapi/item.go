package webapi

import (
	"encoding/json"
	"fmt"
)

// Item is the sum of pin/reaction targets, discriminated by the
// nested object's own "type" field ("message", "file", or
// "file_comment").
type Item interface {
	// ItemType returns the wire discriminator.
	ItemType() string
}

// DecodeItem decodes one pin/reaction target. Unknown types are a
// decode failure carrying the offending string.
func DecodeItem(raw []byte) (Item, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &Error{Kind: ErrJSONParse, Msg: "item is not a JSON object", Raw: string(raw), Err: err}
	}

	var it Item
	switch probe.Type {
	case "message":
		it = &MessageItem{}
	case "file":
		it = &FileItem{}
	case "file_comment":
		it = &FileCommentItem{}
	default:
		return nil, &Error{
			Kind: ErrJSONDecode,
			Msg:  fmt.Sprintf("unknown item type: %q", probe.Type),
			Raw:  string(raw),
		}
	}

	if err := json.Unmarshal(raw, it); err != nil {
		return nil, &Error{Kind: ErrJSONDecode, Msg: "failed to decode item", Raw: string(raw), Err: err}
	}
	return it, nil
}

// decodeOptionalItem decodes an "item" field into dst when present
// and non-null, and leaves dst nil otherwise.
func decodeOptionalItem(raw json.RawMessage, dst *Item) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	it, err := DecodeItem(raw)
	if err != nil {
		return err
	}
	*dst = it
	return nil
}

// Items decodes a JSON array of pin/reaction targets, e.g. in
// pins.list responses.
type Items []Item

func (is *Items) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}
	out := make(Items, 0, len(raws))
	for _, r := range raws {
		it, err := DecodeItem(r)
		if err != nil {
			return err
		}
		out = append(out, it)
	}
	*is = out
	return nil
}

// MessageItem is a pinned or reacted-to message.
type MessageItem struct {
	Channel string  `json:"channel"`
	Message Message `json:"-"`
}

func (i *MessageItem) ItemType() string { return "message" }

func (i *MessageItem) UnmarshalJSON(b []byte) error {
	type alias MessageItem
	aux := struct {
		*alias
		Message json.RawMessage `json:"message"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.Message) > 0 && string(aux.Message) != "null" {
		m, err := DecodeMessage(aux.Message)
		if err != nil {
			return err
		}
		i.Message = m
	}
	return nil
}

// FileItem is a pinned or reacted-to file.
type FileItem struct {
	File File `json:"file"`
}

func (i *FileItem) ItemType() string { return "file" }

// FileCommentItem is a pinned or reacted-to file comment.
type FileCommentItem struct {
	File    File    `json:"file"`
	Comment Comment `json:"comment"`
}

func (i *FileCommentItem) ItemType() string { return "file_comment" }

// StarredItem is the sum of starrable targets, discriminated by the
// nested object's own "type" field. It extends the [Item] set with
// channels, groups, and IMs.
type StarredItem interface {
	// StarType returns the wire discriminator.
	StarType() string
}

// DecodeStarredItem decodes one starred target. Unknown types are a
// decode failure carrying the offending string.
func DecodeStarredItem(raw []byte) (StarredItem, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &Error{Kind: ErrJSONParse, Msg: "starred item is not a JSON object", Raw: string(raw), Err: err}
	}

	var it StarredItem
	switch probe.Type {
	case "message":
		it = &StarredMessage{}
	case "file":
		it = &StarredFile{}
	case "file_comment":
		it = &StarredFileComment{}
	case "channel":
		it = &StarredChannel{}
	case "group":
		it = &StarredGroup{}
	case "im":
		it = &StarredIm{}
	default:
		return nil, &Error{
			Kind: ErrJSONDecode,
			Msg:  fmt.Sprintf("unknown starred item type: %q", probe.Type),
			Raw:  string(raw),
		}
	}

	if err := json.Unmarshal(raw, it); err != nil {
		return nil, &Error{Kind: ErrJSONDecode, Msg: "failed to decode starred item", Raw: string(raw), Err: err}
	}
	return it, nil
}

// StarredItems decodes a JSON array of starred targets, e.g. in
// stars.list responses.
type StarredItems []StarredItem

func (is *StarredItems) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}
	out := make(StarredItems, 0, len(raws))
	for _, r := range raws {
		it, err := DecodeStarredItem(r)
		if err != nil {
			return err
		}
		out = append(out, it)
	}
	*is = out
	return nil
}

// StarredMessage is a starred message.
type StarredMessage struct {
	Channel string  `json:"channel"`
	Message Message `json:"-"`
}

func (i *StarredMessage) StarType() string { return "message" }

func (i *StarredMessage) UnmarshalJSON(b []byte) error {
	type alias StarredMessage
	aux := struct {
		*alias
		Message json.RawMessage `json:"message"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.Message) > 0 && string(aux.Message) != "null" {
		m, err := DecodeMessage(aux.Message)
		if err != nil {
			return err
		}
		i.Message = m
	}
	return nil
}

// StarredFile is a starred file.
type StarredFile struct {
	File File `json:"file"`
}

func (i *StarredFile) StarType() string { return "file" }

// StarredFileComment is a starred file comment.
type StarredFileComment struct {
	File    File    `json:"file"`
	Comment Comment `json:"comment"`
}

func (i *StarredFileComment) StarType() string { return "file_comment" }

// StarredChannel is a starred channel.
type StarredChannel struct {
	Channel string `json:"channel"`
}

func (i *StarredChannel) StarType() string { return "channel" }

// StarredGroup is a starred private group.
type StarredGroup struct {
	Group string `json:"group"`
}

func (i *StarredGroup) StarType() string { return "group" }

// StarredIm is a starred direct message conversation.
type StarredIm struct {
	Channel string `json:"channel"`
}

func (i *StarredIm) StarType() string { return "im" }
