// Star and unstar messages, files, comments, and conversations.

package webapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// StarTarget selects the item a stars method operates on: either
// File, or FileComment, or Channel plus Timestamp.
type StarTarget struct {
	File        string
	FileComment string
	Channel     string
	Timestamp   string
}

func (t *StarTarget) encode(values url.Values) {
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

// StarsAddResponse is the reply to stars.add.
type StarsAddResponse struct{}

// StarsAdd adds a star to an item.
//
// Wraps https://api.slack.com/methods/stars.add
func StarsAdd(ctx context.Context, c *http.Client, token string, target *StarTarget) (*StarsAddResponse, error) {
	values := url.Values{}
	target.encode(values)
	return authedCall[StarsAddResponse](ctx, c, "stars.add", token, values)
}

// StarsListResponse is the reply to stars.list.
type StarsListResponse struct {
	Items  StarredItems `json:"items"`
	Paging Pagination   `json:"paging"`
}

// StarsList lists the items starred by a user. user may be empty to
// list the caller's stars; paging may be nil.
//
// Wraps https://api.slack.com/methods/stars.list
func StarsList(ctx context.Context, c *http.Client, token, user string, paging *PagingOptions) (*StarsListResponse, error) {
	values := url.Values{}
	if user != "" {
		values.Set("user", user)
	}
	if paging != nil {
		if paging.Count > 0 {
			values.Set("count", strconv.Itoa(paging.Count))
		}
		if paging.Page > 0 {
			values.Set("page", strconv.Itoa(paging.Page))
		}
	}
	return authedCall[StarsListResponse](ctx, c, "stars.list", token, values)
}

// StarsRemoveResponse is the reply to stars.remove.
type StarsRemoveResponse struct{}

// StarsRemove removes a star from an item.
//
// Wraps https://api.slack.com/methods/stars.remove
func StarsRemove(ctx context.Context, c *http.Client, token string, target *StarTarget) (*StarsRemoveResponse, error) {
	values := url.Values{}
	target.encode(values)
	return authedCall[StarsRemoveResponse](ctx, c, "stars.remove", token, values)
}
