// Pin and unpin messages, files, and comments.

package webapi

import (
	"context"
	"net/http"
	"net/url"
)

// PinTarget selects the item a pins method operates on: exactly one
// of File, FileComment, or Timestamp should be set.
type PinTarget struct {
	File        string
	FileComment string
	Timestamp   string
}

func (t *PinTarget) encode(values url.Values) {
	if t == nil {
		return
	}
	if t.File != "" {
		values.Set("file", t.File)
	}
	if t.FileComment != "" {
		values.Set("file_comment", t.FileComment)
	}
	if t.Timestamp != "" {
		values.Set("timestamp", t.Timestamp)
	}
}

// PinsAddResponse is the reply to pins.add.
type PinsAddResponse struct{}

// PinsAdd pins an item to a channel.
//
// Wraps https://api.slack.com/methods/pins.add
func PinsAdd(ctx context.Context, c *http.Client, token, channel string, target *PinTarget) (*PinsAddResponse, error) {
	values := url.Values{"channel": {channel}}
	target.encode(values)
	return authedCall[PinsAddResponse](ctx, c, "pins.add", token, values)
}

// PinsListResponse is the reply to pins.list.
type PinsListResponse struct {
	Items Items `json:"items"`
}

// PinsList lists the items pinned to a channel.
//
// Wraps https://api.slack.com/methods/pins.list
func PinsList(ctx context.Context, c *http.Client, token, channel string) (*PinsListResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[PinsListResponse](ctx, c, "pins.list", token, values)
}

// PinsRemoveResponse is the reply to pins.remove.
type PinsRemoveResponse struct{}

// PinsRemove unpins an item from a channel.
//
// Wraps https://api.slack.com/methods/pins.remove
func PinsRemove(ctx context.Context, c *http.Client, token, channel string, target *PinTarget) (*PinsRemoveResponse, error) {
	values := url.Values{"channel": {channel}}
	target.encode(values)
	return authedCall[PinsRemoveResponse](ctx, c, "pins.remove", token, values)
}
