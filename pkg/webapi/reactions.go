// Add and remove emoji reactions on messages, files, and comments.

package webapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ReactionTarget selects the item a reactions method operates on:
// either File, or FileComment, or Channel plus Timestamp.
type ReactionTarget struct {
	File        string
	FileComment string
	Channel     string
	Timestamp   string
}

func (t *ReactionTarget) encode(values url.Values) {
	if t == nil {
		return
	}
	if t.File != "" {
		values.Set("file", t.File)
	}
	if t.FileComment != "" {
		values.Set("file_comment", t.FileComment)
	}
	if t.Channel != "" {
		values.Set("channel", t.Channel)
	}
	if t.Timestamp != "" {
		values.Set("timestamp", t.Timestamp)
	}
}

// ReactionsAddResponse is the reply to reactions.add.
type ReactionsAddResponse struct{}

// ReactionsAdd adds a reaction to an item. name is the emoji name,
// without colons.
//
// Wraps https://api.slack.com/methods/reactions.add
func ReactionsAdd(ctx context.Context, c *http.Client, token, name string, target *ReactionTarget) (*ReactionsAddResponse, error) {
	values := url.Values{"name": {name}}
	target.encode(values)
	return authedCall[ReactionsAddResponse](ctx, c, "reactions.add", token, values)
}

// ReactionsGet returns the reactions on a single item. Unlike every
// other endpoint, the item is inlined at the response's top level, so
// the reply is the decoded [Item] itself. full may be empty.
//
// Wraps https://api.slack.com/methods/reactions.get
func ReactionsGet(ctx context.Context, c *http.Client, token string, target *ReactionTarget, full string) (Item, error) {
	values := url.Values{}
	target.encode(values)
	if full != "" {
		values.Set("full", full)
	}
	values.Set("token", token)

	body, err := fetch(ctx, c, "reactions.get", values)
	if err != nil {
		return nil, err
	}
	return DecodeItem(body)
}

// ReactionsListResponse is the reply to reactions.list.
type ReactionsListResponse struct {
	Items  Items      `json:"items"`
	Paging Pagination `json:"paging"`
}

// ReactionsList lists reactions made by a user. user and full may be
// empty; paging may be nil.
//
// Wraps https://api.slack.com/methods/reactions.list
func ReactionsList(ctx context.Context, c *http.Client, token, user, full string, paging *PagingOptions) (*ReactionsListResponse, error) {
	values := url.Values{}
	if user != "" {
		values.Set("user", user)
	}
	if full != "" {
		values.Set("full", full)
	}
	if paging != nil {
		if paging.Count > 0 {
			values.Set("count", strconv.Itoa(paging.Count))
		}
		if paging.Page > 0 {
			values.Set("page", strconv.Itoa(paging.Page))
		}
	}
	return authedCall[ReactionsListResponse](ctx, c, "reactions.list", token, values)
}

// ReactionsRemoveResponse is the reply to reactions.remove.
type ReactionsRemoveResponse struct{}

// ReactionsRemove removes a reaction from an item.
//
// Wraps https://api.slack.com/methods/reactions.remove
func ReactionsRemove(ctx context.Context, c *http.Client, token, name string, target *ReactionTarget) (*ReactionsRemoveResponse, error) {
	values := url.Values{"name": {name}}
	target.encode(values)
	return authedCall[ReactionsRemoveResponse](ctx, c, "reactions.remove", token, values)
}
