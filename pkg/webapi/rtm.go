package webapi

import (
	"context"
	"net/http"
	"net/url"
)

// RtmStartResponse is the rtm.start handshake snapshot: the WebSocket
// URL plus the full team roster at connection time. The identity of
// the authenticated caller arrives under the wire key "self".
type RtmStartResponse struct {
	URL      string    `json:"url"`
	SelfData SelfData  `json:"self"`
	Team     Team      `json:"team"`
	Users    []User    `json:"users"`
	Channels []Channel `json:"channels"`
	Groups   []Group   `json:"groups"`
	Ims      []Im      `json:"ims"`
	Bots     []Bot     `json:"bots"`
}

// RtmStart begins a Real Time Messaging session; the returned URL is
// only valid for a short window and must be dialed promptly.
// simpleLatest and noUnreads may be nil to use the server defaults.
//
// Wraps https://api.slack.com/methods/rtm.start
func RtmStart(ctx context.Context, c *http.Client, token string, simpleLatest, noUnreads *bool) (*RtmStartResponse, error) {
	values := url.Values{}
	if simpleLatest != nil {
		values.Set("simple_latest", boolParam(*simpleLatest))
	}
	if noUnreads != nil {
		values.Set("no_unreads", boolParam(*noUnreads))
	}
	return authedCall[RtmStartResponse](ctx, c, "rtm.start", token, values)
}
