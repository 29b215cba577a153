// Get info on your team's private groups.

package webapi

import (
	"context"
	"net/http"
	"net/url"
)

// GroupsArchiveResponse is the reply to groups.archive.
type GroupsArchiveResponse struct{}

// GroupsArchive archives a private group.
//
// Wraps https://api.slack.com/methods/groups.archive
func GroupsArchive(ctx context.Context, c *http.Client, token, channel string) (*GroupsArchiveResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[GroupsArchiveResponse](ctx, c, "groups.archive", token, values)
}

// GroupsCloseResponse is the reply to groups.close.
type GroupsCloseResponse struct {
	NoOp          bool `json:"no_op,omitempty"`
	AlreadyClosed bool `json:"already_closed,omitempty"`
}

// GroupsClose closes a private group.
//
// Wraps https://api.slack.com/methods/groups.close
func GroupsClose(ctx context.Context, c *http.Client, token, channel string) (*GroupsCloseResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[GroupsCloseResponse](ctx, c, "groups.close", token, values)
}

// GroupsCreateResponse is the reply to groups.create.
type GroupsCreateResponse struct {
	Group Group `json:"group"`
}

// GroupsCreate creates a private group.
//
// Wraps https://api.slack.com/methods/groups.create
func GroupsCreate(ctx context.Context, c *http.Client, token, name string) (*GroupsCreateResponse, error) {
	values := url.Values{"name": {name}}
	return authedCall[GroupsCreateResponse](ctx, c, "groups.create", token, values)
}

// GroupsCreateChildResponse is the reply to groups.createChild.
type GroupsCreateChildResponse struct {
	Group Group `json:"group"`
}

// GroupsCreateChild clones and archives a private group.
//
// Wraps https://api.slack.com/methods/groups.createChild
func GroupsCreateChild(ctx context.Context, c *http.Client, token, channel string) (*GroupsCreateChildResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[GroupsCreateChildResponse](ctx, c, "groups.createChild", token, values)
}

// GroupsHistoryResponse is the reply to groups.history.
type GroupsHistoryResponse struct {
	Latest    string   `json:"latest,omitempty"`
	Oldest    string   `json:"oldest,omitempty"`
	Messages  Messages `json:"messages"`
	HasMore   bool     `json:"has_more"`
	IsLimited bool     `json:"is_limited,omitempty"`
}

// GroupsHistory fetches history of messages and events from a private
// group.
//
// Wraps https://api.slack.com/methods/groups.history
func GroupsHistory(ctx context.Context, c *http.Client, token, channel string, opts *HistoryOptions) (*GroupsHistoryResponse, error) {
	values := url.Values{"channel": {channel}}
	opts.encode(values)
	return authedCall[GroupsHistoryResponse](ctx, c, "groups.history", token, values)
}

// GroupsInfoResponse is the reply to groups.info.
type GroupsInfoResponse struct {
	Group Group `json:"group"`
}

// GroupsInfo gets information about a private group.
//
// Wraps https://api.slack.com/methods/groups.info
func GroupsInfo(ctx context.Context, c *http.Client, token, channel string) (*GroupsInfoResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[GroupsInfoResponse](ctx, c, "groups.info", token, values)
}

// GroupsInviteResponse is the reply to groups.invite.
type GroupsInviteResponse struct {
	Group          Group `json:"group"`
	AlreadyInGroup bool  `json:"already_in_group,omitempty"`
}

// GroupsInvite invites a user to a private group.
//
// Wraps https://api.slack.com/methods/groups.invite
func GroupsInvite(ctx context.Context, c *http.Client, token, channel, user string) (*GroupsInviteResponse, error) {
	values := url.Values{"channel": {channel}, "user": {user}}
	return authedCall[GroupsInviteResponse](ctx, c, "groups.invite", token, values)
}

// GroupsKickResponse is the reply to groups.kick.
type GroupsKickResponse struct{}

// GroupsKick removes a user from a private group.
//
// Wraps https://api.slack.com/methods/groups.kick
func GroupsKick(ctx context.Context, c *http.Client, token, channel, user string) (*GroupsKickResponse, error) {
	values := url.Values{"channel": {channel}, "user": {user}}
	return authedCall[GroupsKickResponse](ctx, c, "groups.kick", token, values)
}

// GroupsLeaveResponse is the reply to groups.leave.
type GroupsLeaveResponse struct{}

// GroupsLeave leaves a private group.
//
// Wraps https://api.slack.com/methods/groups.leave
func GroupsLeave(ctx context.Context, c *http.Client, token, channel string) (*GroupsLeaveResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[GroupsLeaveResponse](ctx, c, "groups.leave", token, values)
}

// GroupsListResponse is the reply to groups.list.
type GroupsListResponse struct {
	Groups []Group `json:"groups"`
}

// GroupsList lists private groups that the calling user has access
// to. excludeArchived may be nil to use the server default.
//
// Wraps https://api.slack.com/methods/groups.list
func GroupsList(ctx context.Context, c *http.Client, token string, excludeArchived *bool) (*GroupsListResponse, error) {
	values := url.Values{}
	if excludeArchived != nil {
		values.Set("exclude_archived", boolParam(*excludeArchived))
	}
	return authedCall[GroupsListResponse](ctx, c, "groups.list", token, values)
}

// GroupsMarkResponse is the reply to groups.mark.
type GroupsMarkResponse struct{}

// GroupsMark sets the read cursor in a private group.
//
// Wraps https://api.slack.com/methods/groups.mark
func GroupsMark(ctx context.Context, c *http.Client, token, channel, ts string) (*GroupsMarkResponse, error) {
	values := url.Values{"channel": {channel}, "ts": {ts}}
	return authedCall[GroupsMarkResponse](ctx, c, "groups.mark", token, values)
}

// GroupsOpenResponse is the reply to groups.open.
type GroupsOpenResponse struct {
	NoOp        bool `json:"no_op,omitempty"`
	AlreadyOpen bool `json:"already_open,omitempty"`
}

// GroupsOpen opens a private group.
//
// Wraps https://api.slack.com/methods/groups.open
func GroupsOpen(ctx context.Context, c *http.Client, token, channel string) (*GroupsOpenResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[GroupsOpenResponse](ctx, c, "groups.open", token, values)
}

// AbridgedGroup is the cut-down group record returned by
// groups.rename.
type AbridgedGroup struct {
	ID      string `json:"id"`
	IsGroup bool   `json:"is_group"`
	Name    string `json:"name"`
	Created int64  `json:"created"`
}

// GroupsRenameResponse is the reply to groups.rename. The renamed
// group arrives under the "channel" key.
type GroupsRenameResponse struct {
	Channel AbridgedGroup `json:"channel"`
}

// GroupsRename renames a private group.
//
// Wraps https://api.slack.com/methods/groups.rename
func GroupsRename(ctx context.Context, c *http.Client, token, channel, name string) (*GroupsRenameResponse, error) {
	values := url.Values{"channel": {channel}, "name": {name}}
	return authedCall[GroupsRenameResponse](ctx, c, "groups.rename", token, values)
}

// GroupsSetPurposeResponse is the reply to groups.setPurpose.
type GroupsSetPurposeResponse struct {
	Purpose string `json:"purpose"`
}

// GroupsSetPurpose sets the purpose for a private group.
//
// Wraps https://api.slack.com/methods/groups.setPurpose
func GroupsSetPurpose(ctx context.Context, c *http.Client, token, channel, purpose string) (*GroupsSetPurposeResponse, error) {
	values := url.Values{"channel": {channel}, "purpose": {purpose}}
	return authedCall[GroupsSetPurposeResponse](ctx, c, "groups.setPurpose", token, values)
}

// GroupsSetTopicResponse is the reply to groups.setTopic.
type GroupsSetTopicResponse struct {
	Topic string `json:"topic"`
}

// GroupsSetTopic sets the topic for a private group.
//
// Wraps https://api.slack.com/methods/groups.setTopic
func GroupsSetTopic(ctx context.Context, c *http.Client, token, channel, topic string) (*GroupsSetTopicResponse, error) {
	values := url.Values{"channel": {channel}, "topic": {topic}}
	return authedCall[GroupsSetTopicResponse](ctx, c, "groups.setTopic", token, values)
}

// GroupsUnarchiveResponse is the reply to groups.unarchive.
type GroupsUnarchiveResponse struct{}

// GroupsUnarchive unarchives a private group.
//
// Wraps https://api.slack.com/methods/groups.unarchive
func GroupsUnarchive(ctx context.Context, c *http.Client, token, channel string) (*GroupsUnarchiveResponse, error) {
	values := url.Values{"channel": {channel}}
	return authedCall[GroupsUnarchiveResponse](ctx, c, "groups.unarchive", token, values)
}
