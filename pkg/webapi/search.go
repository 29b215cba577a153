// Search your team's files and messages.

package webapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchOptions control result ordering and paging for the search
// methods. Sort is "score" or "timestamp"; SortDir is "asc" or
// "desc".
type SearchOptions struct {
	Sort      string
	SortDir   string
	Highlight *bool
	Count     int
	Page      int
}

func (o *SearchOptions) encode(values url.Values) {
	if o == nil {
		return
	}
	if o.Sort != "" {
		values.Set("sort", o.Sort)
	}
	if o.SortDir != "" {
		values.Set("sort_dir", o.SortDir)
	}
	if o.Highlight != nil {
		values.Set("highlight", boolParam(*o.Highlight))
	}
	if o.Count > 0 {
		values.Set("count", strconv.Itoa(o.Count))
	}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
}

// SearchMatches is one page of matches of type T.
type SearchMatches[T any] struct {
	Total   int        `json:"total"`
	Matches []T        `json:"matches"`
	Paging  Pagination `json:"paging"`
}

// MessageLink is the surrounding-context message attached to a search
// hit.
type MessageLink struct {
	User     string `json:"user"`
	Username string `json:"username"`
	Ts       string `json:"ts"`
	Text     string `json:"text"`
}

// SearchMessageChannel names the channel a matched message was posted
// in.
type SearchMessageChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchMessage is one matched message with its surrounding context.
type SearchMessage struct {
	User      string               `json:"user"`
	Username  string               `json:"username"`
	Ts        string               `json:"ts"`
	Text      string               `json:"text"`
	Channel   SearchMessageChannel `json:"channel"`
	Permalink string               `json:"permalink"`
	Previous  *MessageLink         `json:"previous,omitempty"`
	Previous2 *MessageLink         `json:"previous_2,omitempty"`
	Next      *MessageLink         `json:"next,omitempty"`
	Next2     *MessageLink         `json:"next_2,omitempty"`
}

// SearchAllResponse is the reply to search.all.
type SearchAllResponse struct {
	Query    string                       `json:"query"`
	Messages SearchMatches[SearchMessage] `json:"messages"`
	Files    SearchMatches[File]          `json:"files"`
}

// SearchAll searches for messages and files matching a query.
//
// Wraps https://api.slack.com/methods/search.all
func SearchAll(ctx context.Context, c *http.Client, token, query string, opts *SearchOptions) (*SearchAllResponse, error) {
	values := url.Values{"query": {query}}
	opts.encode(values)
	return authedCall[SearchAllResponse](ctx, c, "search.all", token, values)
}

// SearchFilesResponse is the reply to search.files.
type SearchFilesResponse struct {
	Query string              `json:"query"`
	Files SearchMatches[File] `json:"files"`
}

// SearchFiles searches for files matching a query.
//
// Wraps https://api.slack.com/methods/search.files
func SearchFiles(ctx context.Context, c *http.Client, token, query string, opts *SearchOptions) (*SearchFilesResponse, error) {
	values := url.Values{"query": {query}}
	opts.encode(values)
	return authedCall[SearchFilesResponse](ctx, c, "search.files", token, values)
}

// SearchMessagesResponse is the reply to search.messages.
type SearchMessagesResponse struct {
	Query    string                       `json:"query"`
	Messages SearchMatches[SearchMessage] `json:"messages"`
}

// SearchMessages searches for messages matching a query.
//
// Wraps https://api.slack.com/methods/search.messages
func SearchMessages(ctx context.Context, c *http.Client, token, query string, opts *SearchOptions) (*SearchMessagesResponse, error) {
	values := url.Values{"query": {query}}
	opts.encode(values)
	return authedCall[SearchMessagesResponse](ctx, c, "search.messages", token, values)
}
