// Get info on your direct messages.

package webapi

import (
	"context"
	"net/http"
	"net/url"
)

// ImCloseResponse is the reply to im.close.
type ImCloseResponse struct {
	NoOp          bool `json:"no_op,omitempty"`
	AlreadyClosed bool `json:"already_closed,omitempty"`
}

// ImClose closes a direct message channel.
//
// Wraps https://api.slack.com/methods/im.close
func ImClose(ctx context.Context, c *http.Client, token, channel string) (*ImCloseResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[ImCloseResponse](ctx, c, "im.close", token, values)
}

// ImHistoryResponse is the reply to im.history.
type ImHistoryResponse struct {
	Latest   string   `json:"latest,omitempty"`
	Messages Messages `json:"messages"`
	HasMore  bool     `json:"has_more"`
}

// ImHistory fetches history of messages and events from a direct
// message channel.
//
// Wraps https://api.slack.com/methods/im.history
func ImHistory(ctx context.Context, c *http.Client, token, channel string, opts *HistoryOptions) (*ImHistoryResponse, error) {
	values := url.Values{"channel": {channel}}
	opts.encode(values)
	return authedCall[ImHistoryResponse](ctx, c, "im.history", token, values)
}

// ImListResponse is the reply to im.list.
type ImListResponse struct {
	Ims []Im `json:"ims"`
}

// ImList lists direct message channels for the calling user.
//
// Wraps https://api.slack.com/methods/im.list
func ImList(ctx context.Context, c *http.Client, token string) (*ImListResponse, error) {
	return authedCall[ImListResponse](ctx, c, "im.list", token, nil)
}

// ImMarkResponse is the reply to im.mark.
type ImMarkResponse struct{}

// ImMark sets the read cursor in a direct message channel. Note that
// im.mark names its ts parameter "timestamp".
//
// Wraps https://api.slack.com/methods/im.mark
func ImMark(ctx context.Context, c *http.Client, token, channel, timestamp string) (*ImMarkResponse, error) {
	values := url.Values{"channel": {channel}, "timestamp": {timestamp}}
	return authedCall[ImMarkResponse](ctx, c, "im.mark", token, values)
}

// ChannelID is the bare channel reference returned by im.open.
type ChannelID struct {
	ID string `json:"id"`
}

// ImOpenResponse is the reply to im.open.
type ImOpenResponse struct {
	NoOp        bool      `json:"no_op,omitempty"`
	AlreadyOpen bool      `json:"already_open,omitempty"`
	Channel     ChannelID `json:"channel"`
}

// ImOpen opens a direct message channel with the given user.
//
// Wraps https://api.slack.com/methods/im.open
func ImOpen(ctx context.Context, c *http.Client, token, user string) (*ImOpenResponse, error) {
	values := url.Values{"user": {user}}
	return authedCall[ImOpenResponse](ctx, c, "im.open", token, values)
}
