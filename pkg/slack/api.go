package slack

import (
	"context"

	"github.com/tzrikka/slackrtm/pkg/webapi"
)

// Convenience wrappers over the Web API bindings, using the client's
// token and HTTP client. These go over HTTPS, not the RTM socket.

// PostMessage sends a message to a channel via chat.postMessage.
func (c *RtmClient) PostMessage(ctx context.Context, channel, text string, opts *webapi.PostMessageOptions) (*webapi.ChatPostMessageResponse, error) {
	return webapi.ChatPostMessage(ctx, c.hc, c.token, channel, text, opts)
}

// DeleteMessage deletes a message via chat.delete.
func (c *RtmClient) DeleteMessage(ctx context.Context, ts, channel string) (*webapi.ChatDeleteResponse, error) {
	return webapi.ChatDelete(ctx, c.hc, c.token, ts, channel)
}

// UpdateMessage edits a message via chat.update.
func (c *RtmClient) UpdateMessage(ctx context.Context, ts, channel, text string, opts *webapi.UpdateMessageOptions) (*webapi.ChatUpdateResponse, error) {
	return webapi.ChatUpdate(ctx, c.hc, c.token, ts, channel, text, opts)
}

// Mark sets the channel read cursor via channels.mark.
func (c *RtmClient) Mark(ctx context.Context, channel, ts string) (*webapi.ChannelsMarkResponse, error) {
	return webapi.ChannelsMark(ctx, c.hc, c.token, channel, ts)
}

// SetTopic sets a channel topic via channels.setTopic.
func (c *RtmClient) SetTopic(ctx context.Context, channel, topic string) (*webapi.ChannelsSetTopicResponse, error) {
	return webapi.ChannelsSetTopic(ctx, c.hc, c.token, channel, topic)
}

// SetPurpose sets a channel purpose via channels.setPurpose.
func (c *RtmClient) SetPurpose(ctx context.Context, channel, purpose string) (*webapi.ChannelsSetPurposeResponse, error) {
	return webapi.ChannelsSetPurpose(ctx, c.hc, c.token, channel, purpose)
}

// ChannelsHistory fetches channel history via channels.history.
func (c *RtmClient) ChannelsHistory(ctx context.Context, channel string, opts *webapi.HistoryOptions) (*webapi.ChannelsHistoryResponse, error) {
	return webapi.ChannelsHistory(ctx, c.hc, c.token, channel, opts)
}

// AddReactionTimestamp reacts to the message with the given ts in a
// channel.
func (c *RtmClient) AddReactionTimestamp(ctx context.Context, emojiName, channel, ts string) (*webapi.ReactionsAddResponse, error) {
	return webapi.ReactionsAdd(ctx, c.hc, c.token, emojiName, &webapi.ReactionTarget{Channel: channel, Timestamp: ts})
}

// AddReactionFile reacts to a file.
func (c *RtmClient) AddReactionFile(ctx context.Context, emojiName, file string) (*webapi.ReactionsAddResponse, error) {
	return webapi.ReactionsAdd(ctx, c.hc, c.token, emojiName, &webapi.ReactionTarget{File: file})
}

// AddReactionFileComment reacts to a file comment.
func (c *RtmClient) AddReactionFileComment(ctx context.Context, emojiName, fileComment string) (*webapi.ReactionsAddResponse, error) {
	return webapi.ReactionsAdd(ctx, c.hc, c.token, emojiName, &webapi.ReactionTarget{FileComment: fileComment})
}

// ImOpen opens a direct message channel with a user via im.open.
func (c *RtmClient) ImOpen(ctx context.Context, user string) (*webapi.ImOpenResponse, error) {
	return webapi.ImOpen(ctx, c.hc, c.token, user)
}

// ImClose closes a direct message channel via im.close.
func (c *RtmClient) ImClose(ctx context.Context, channel string) (*webapi.ImCloseResponse, error) {
	return webapi.ImClose(ctx, c.hc, c.token, channel)
}

// ImHistory fetches direct message history via im.history.
func (c *RtmClient) ImHistory(ctx context.Context, channel string, opts *webapi.HistoryOptions) (*webapi.ImHistoryResponse, error) {
	return webapi.ImHistory(ctx, c.hc, c.token, channel, opts)
}

// ImList lists open direct message channels via im.list.
func (c *RtmClient) ImList(ctx context.Context) (*webapi.ImListResponse, error) {
	return webapi.ImList(ctx, c.hc, c.token)
}

// ImMark sets the direct message read cursor via im.mark.
func (c *RtmClient) ImMark(ctx context.Context, channel, timestamp string) (*webapi.ImMarkResponse, error) {
	return webapi.ImMark(ctx, c.hc, c.token, channel, timestamp)
}

// ListUsers fetches the current user list via users.list, without
// touching the cached roster.
func (c *RtmClient) ListUsers(ctx context.Context) ([]webapi.User, error) {
	resp, err := webapi.UsersList(ctx, c.hc, c.token, nil)
	if err != nil {
		return nil, err
	}
	return resp.Members, nil
}

// ListChannels fetches the current channel list via channels.list,
// without touching the cached roster.
func (c *RtmClient) ListChannels(ctx context.Context) ([]webapi.Channel, error) {
	resp, err := webapi.ChannelsList(ctx, c.hc, c.token, nil)
	if err != nil {
		return nil, err
	}
	return resp.Channels, nil
}

// ListGroups fetches the current private group list via groups.list,
// without touching the cached roster.
func (c *RtmClient) ListGroups(ctx context.Context) ([]webapi.Group, error) {
	resp, err := webapi.GroupsList(ctx, c.hc, c.token, nil)
	if err != nil {
		return nil, err
	}
	return resp.Groups, nil
}

// UpdateUsers refreshes the cached user roster and its name-to-id map
// atomically from users.list.
func (c *RtmClient) UpdateUsers(ctx context.Context) ([]webapi.User, error) {
	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.start == nil {
		return nil, notLoggedIn()
	}
	c.start.Users = users
	c.userIDs = userIDsByName(users)
	return users, nil
}

// UpdateChannels refreshes the cached channel roster and its
// name-to-id map atomically from channels.list.
func (c *RtmClient) UpdateChannels(ctx context.Context) ([]webapi.Channel, error) {
	channels, err := c.ListChannels(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.start == nil {
		return nil, notLoggedIn()
	}
	c.start.Channels = channels
	c.channelIDs = channelIDsByName(channels)
	return channels, nil
}

// UpdateGroups refreshes the cached private group roster and its
// name-to-id map atomically from groups.list.
func (c *RtmClient) UpdateGroups(ctx context.Context) ([]webapi.Group, error) {
	groups, err := c.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.start == nil {
		return nil, notLoggedIn()
	}
	c.start.Groups = groups
	c.groupIDs = groupIDsByName(groups)
	return groups, nil
}
