// Post chat messages to Slack, update them, and delete them.

package webapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// ChatDeleteResponse is the reply to chat.delete.
type ChatDeleteResponse struct {
	Channel string `json:"channel"`
	Ts      string `json:"ts"`
}

// ChatDelete deletes a message.
//
// Wraps https://api.slack.com/methods/chat.delete
func ChatDelete(ctx context.Context, c *http.Client, token, ts, channel string) (*ChatDeleteResponse, error) {
	values := url.Values{"ts": {ts}, "channel": {channel}}
	return authedCall[ChatDeleteResponse](ctx, c, "chat.delete", token, values)
}

// PostMessageOptions are the optional arguments to chat.postMessage.
// Note the mixed boolean renderings: link_names is a legacy "1"/"0"
// parameter while as_user and the unfurl flags are "true"/"false".
type PostMessageOptions struct {
	Username    string
	AsUser      *bool
	Parse       string
	LinkNames   *bool
	Attachments string
	UnfurlLinks *bool
	UnfurlMedia *bool
	IconURL     string
	IconEmoji   string
}

// ChatPostMessageResponse is the reply to chat.postMessage.
type ChatPostMessageResponse struct {
	Ts      string  `json:"ts"`
	Channel string  `json:"channel"`
	Message Message `json:"-"`
}

func (r *ChatPostMessageResponse) UnmarshalJSON(b []byte) error {
	type alias ChatPostMessageResponse
	aux := struct {
		*alias
		Message json.RawMessage `json:"message"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.Message) > 0 && string(aux.Message) != "null" {
		m, err := DecodeMessage(aux.Message)
		if err != nil {
			return err
		}
		r.Message = m
	}
	return nil
}

// ChatPostMessage sends a message to a channel.
//
// Wraps https://api.slack.com/methods/chat.postMessage
func ChatPostMessage(ctx context.Context, c *http.Client, token, channel, text string, opts *PostMessageOptions) (*ChatPostMessageResponse, error) {
	values := url.Values{"channel": {channel}, "text": {text}}
	if opts != nil {
		if opts.Username != "" {
			values.Set("username", opts.Username)
		}
		if opts.AsUser != nil {
			values.Set("as_user", boolParamNew(*opts.AsUser))
		}
		if opts.Parse != "" {
			values.Set("parse", opts.Parse)
		}
		if opts.LinkNames != nil {
			values.Set("link_names", boolParam(*opts.LinkNames))
		}
		if opts.Attachments != "" {
			values.Set("attachments", opts.Attachments)
		}
		if opts.UnfurlLinks != nil {
			values.Set("unfurl_links", boolParamNew(*opts.UnfurlLinks))
		}
		if opts.UnfurlMedia != nil {
			values.Set("unfurl_media", boolParamNew(*opts.UnfurlMedia))
		}
		if opts.IconURL != "" {
			values.Set("icon_url", opts.IconURL)
		}
		if opts.IconEmoji != "" {
			values.Set("icon_emoji", opts.IconEmoji)
		}
	}
	return authedCall[ChatPostMessageResponse](ctx, c, "chat.postMessage", token, values)
}

// UpdateMessageOptions are the optional arguments to chat.update.
type UpdateMessageOptions struct {
	Attachments string
	Parse       string
	LinkNames   *bool
}

// ChatUpdateResponse is the reply to chat.update.
type ChatUpdateResponse struct {
	Channel string `json:"channel"`
	Ts      string `json:"ts"`
	Text    string `json:"text"`
}

// ChatUpdate updates a message.
//
// Wraps https://api.slack.com/methods/chat.update
func ChatUpdate(ctx context.Context, c *http.Client, token, ts, channel, text string, opts *UpdateMessageOptions) (*ChatUpdateResponse, error) {
	values := url.Values{"ts": {ts}, "channel": {channel}, "text": {text}}
	if opts != nil {
		if opts.Attachments != "" {
			values.Set("attachments", opts.Attachments)
		}
		if opts.Parse != "" {
			values.Set("parse", opts.Parse)
		}
		if opts.LinkNames != nil {
			values.Set("link_names", boolParam(*opts.LinkNames))
		}
	}
	return authedCall[ChatUpdateResponse](ctx, c, "chat.update", token, values)
}
