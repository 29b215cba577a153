// Get info on your team's Slack channels, create or archive channels,
// invite users, set the topic and purpose, and mark a channel as read.

package webapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ChannelsArchiveResponse is the reply to channels.archive.
type ChannelsArchiveResponse struct{}

// ChannelsArchive archives a channel.
//
// Wraps https://api.slack.com/methods/channels.archive
func ChannelsArchive(ctx context.Context, c *http.Client, token, channel string) (*ChannelsArchiveResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[ChannelsArchiveResponse](ctx, c, "channels.archive", token, values)
}

// ChannelsCreateResponse is the reply to channels.create.
type ChannelsCreateResponse struct {
	Channel Channel `json:"channel"`
}

// ChannelsCreate creates a channel.
//
// Wraps https://api.slack.com/methods/channels.create
func ChannelsCreate(ctx context.Context, c *http.Client, token, name string) (*ChannelsCreateResponse, error) {
	values := url.Values{"name": {name}}
	return authedCall[ChannelsCreateResponse](ctx, c, "channels.create", token, values)
}

// HistoryOptions narrows a history request. The zero value requests
// the server defaults. Latest and Oldest are ts strings.
type HistoryOptions struct {
	Latest    string
	Oldest    string
	Inclusive *bool
	Count     int
}

func (o *HistoryOptions) encode(values url.Values) {
	if o == nil {
		return
	}
	if o.Latest != "" {
		values.Set("latest", o.Latest)
	}
	if o.Oldest != "" {
		values.Set("oldest", o.Oldest)
	}
	if o.Inclusive != nil {
		values.Set("inclusive", boolParam(*o.Inclusive))
	}
	if o.Count > 0 {
		values.Set("count", strconv.Itoa(o.Count))
	}
}

// ChannelsHistoryResponse is the reply to channels.history.
type ChannelsHistoryResponse struct {
	Latest   string   `json:"latest,omitempty"`
	Oldest   string   `json:"oldest,omitempty"`
	Messages Messages `json:"messages"`
	HasMore  bool     `json:"has_more"`
}

// ChannelsHistory fetches history of messages and events from a channel.
//
// Wraps https://api.slack.com/methods/channels.history
func ChannelsHistory(ctx context.Context, c *http.Client, token, channel string, opts *HistoryOptions) (*ChannelsHistoryResponse, error) {
	values := url.Values{"channel": {channel}}
	opts.encode(values)
	return authedCall[ChannelsHistoryResponse](ctx, c, "channels.history", token, values)
}

// ChannelsInfoResponse is the reply to channels.info.
type ChannelsInfoResponse struct {
	Channel Channel `json:"channel"`
}

// ChannelsInfo gets information about a channel.
//
// Wraps https://api.slack.com/methods/channels.info
func ChannelsInfo(ctx context.Context, c *http.Client, token, channel string) (*ChannelsInfoResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[ChannelsInfoResponse](ctx, c, "channels.info", token, values)
}

// ChannelsInviteResponse is the reply to channels.invite.
type ChannelsInviteResponse struct {
	Channel Channel `json:"channel"`
}

// ChannelsInvite invites a user to a channel.
//
// Wraps https://api.slack.com/methods/channels.invite
func ChannelsInvite(ctx context.Context, c *http.Client, token, channel, user string) (*ChannelsInviteResponse, error) {
	values := url.Values{"channel": {channel}, "user": {user}}
	return authedCall[ChannelsInviteResponse](ctx, c, "channels.invite", token, values)
}

// ChannelsJoinResponse is the reply to channels.join.
type ChannelsJoinResponse struct {
	AlreadyInChannel bool    `json:"already_in_channel,omitempty"`
	Channel          Channel `json:"channel"`
}

// ChannelsJoin joins a channel, creating it if needed.
//
// Wraps https://api.slack.com/methods/channels.join
func ChannelsJoin(ctx context.Context, c *http.Client, token, name string) (*ChannelsJoinResponse, error) {
	values := url.Values{"name": {name}}
	return authedCall[ChannelsJoinResponse](ctx, c, "channels.join", token, values)
}

// ChannelsKickResponse is the reply to channels.kick.
type ChannelsKickResponse struct{}

// ChannelsKick removes a user from a channel.
//
// Wraps https://api.slack.com/methods/channels.kick
func ChannelsKick(ctx context.Context, c *http.Client, token, channel, user string) (*ChannelsKickResponse, error) {
	values := url.Values{"channel": {channel}, "user": {user}}
	return authedCall[ChannelsKickResponse](ctx, c, "channels.kick", token, values)
}

// ChannelsLeaveResponse is the reply to channels.leave.
type ChannelsLeaveResponse struct {
	NotInChannel bool `json:"not_in_channel,omitempty"`
}

// ChannelsLeave leaves a channel.
//
// Wraps https://api.slack.com/methods/channels.leave
func ChannelsLeave(ctx context.Context, c *http.Client, token, channel string) (*ChannelsLeaveResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[ChannelsLeaveResponse](ctx, c, "channels.leave", token, values)
}

// ChannelsListResponse is the reply to channels.list.
type ChannelsListResponse struct {
	Channels []Channel `json:"channels"`
}

// ChannelsList lists all channels in a Slack team. excludeArchived
// may be nil to use the server default.
//
// Wraps https://api.slack.com/methods/channels.list
func ChannelsList(ctx context.Context, c *http.Client, token string, excludeArchived *bool) (*ChannelsListResponse, error) {
	values := url.Values{}
	if excludeArchived != nil {
		values.Set("exclude_archived", boolParam(*excludeArchived))
	}
	return authedCall[ChannelsListResponse](ctx, c, "channels.list", token, values)
}

// ChannelsMarkResponse is the reply to channels.mark.
type ChannelsMarkResponse struct{}

// ChannelsMark sets the read cursor in a channel.
//
// Wraps https://api.slack.com/methods/channels.mark
func ChannelsMark(ctx context.Context, c *http.Client, token, channel, ts string) (*ChannelsMarkResponse, error) {
	values := url.Values{"channel": {channel}, "ts": {ts}}
	return authedCall[ChannelsMarkResponse](ctx, c, "channels.mark", token, values)
}

// AbridgedChannel is the cut-down channel record returned by
// channels.rename.
type AbridgedChannel struct {
	ID        string `json:"id"`
	IsChannel bool   `json:"is_channel"`
	Name      string `json:"name"`
	Created   int64  `json:"created"`
}

// ChannelsRenameResponse is the reply to channels.rename.
type ChannelsRenameResponse struct {
	Channel AbridgedChannel `json:"channel"`
}

// ChannelsRename renames a channel.
//
// Wraps https://api.slack.com/methods/channels.rename
func ChannelsRename(ctx context.Context, c *http.Client, token, channel, name string) (*ChannelsRenameResponse, error) {
	values := url.Values{"channel": {channel}, "name": {name}}
	return authedCall[ChannelsRenameResponse](ctx, c, "channels.rename", token, values)
}

// ChannelsSetPurposeResponse is the reply to channels.setPurpose.
type ChannelsSetPurposeResponse struct {
	Purpose string `json:"purpose"`
}

// ChannelsSetPurpose sets the purpose for a channel.
//
// Wraps https://api.slack.com/methods/channels.setPurpose
func ChannelsSetPurpose(ctx context.Context, c *http.Client, token, channel, purpose string) (*ChannelsSetPurposeResponse, error) {
	values := url.Values{"channel": {channel}, "purpose": {purpose}}
	return authedCall[ChannelsSetPurposeResponse](ctx, c, "channels.setPurpose", token, values)
}

// ChannelsSetTopicResponse is the reply to channels.setTopic.
type ChannelsSetTopicResponse struct {
	Topic string `json:"topic"`
}

// ChannelsSetTopic sets the topic for a channel.
//
// Wraps https://api.slack.com/methods/channels.setTopic
func ChannelsSetTopic(ctx context.Context, c *http.Client, token, channel, topic string) (*ChannelsSetTopicResponse, error) {
	values := url.Values{"channel": {channel}, "topic": {topic}}
	return authedCall[ChannelsSetTopicResponse](ctx, c, "channels.setTopic", token, values)
}

// ChannelsUnarchiveResponse is the reply to channels.unarchive.
type ChannelsUnarchiveResponse struct{}

// ChannelsUnarchive unarchives a channel.
//
// Wraps https://api.slack.com/methods/channels.unarchive
func ChannelsUnarchive(ctx context.Context, c *http.Client, token, channel string) (*ChannelsUnarchiveResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[ChannelsUnarchiveResponse](ctx, c, "channels.unarchive", token, values)
}
