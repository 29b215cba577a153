// Get info on files uploaded to Slack and delete them. Uploads are
// multipart and intentionally not covered here.

package webapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// FilesDeleteResponse is the reply to files.delete.
type FilesDeleteResponse struct{}

// FilesDelete deletes a file from the team.
//
// Wraps https://api.slack.com/methods/files.delete
func FilesDelete(ctx context.Context, c *http.Client, token, file string) (*FilesDeleteResponse, error) {
	values := url.Values{"file": {file}}
	return authedCall[FilesDeleteResponse](ctx, c, "files.delete", token, values)
}

// PagingOptions select a page of a paginated listing. Zero values
// request the server defaults.
type PagingOptions struct {
	Count int
	Page  int
}

func (o *PagingOptions) encode(values url.Values) {
	if o == nil {
		return
	}
	if o.Count > 0 {
		values.Set("count", strconv.Itoa(o.Count))
	}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
}

// FilesInfoResponse is the reply to files.info.
type FilesInfoResponse struct {
	File     File       `json:"file"`
	Comments []Comment  `json:"comments"`
	Paging   Pagination `json:"paging"`
}

// FilesInfo gets information about a team file.
//
// Wraps https://api.slack.com/methods/files.info
func FilesInfo(ctx context.Context, c *http.Client, token, file string, paging *PagingOptions) (*FilesInfoResponse, error) {
	values := url.Values{"file": {file}}
	paging.encode(values)
	return authedCall[FilesInfoResponse](ctx, c, "files.info", token, values)
}

// FilesListOptions filter a files.list request. TsFrom and TsTo are
// ts strings; Types is a comma-separated list of file type filters.
type FilesListOptions struct {
	User   string
	TsFrom string
	TsTo   string
	Types  string
	Count  int
	Page   int
}

// FilesListResponse is the reply to files.list.
type FilesListResponse struct {
	Files  []File     `json:"files"`
	Paging Pagination `json:"paging"`
}

// FilesList lists and filters team files.
//
// Wraps https://api.slack.com/methods/files.list
func FilesList(ctx context.Context, c *http.Client, token string, opts *FilesListOptions) (*FilesListResponse, error) {
	values := url.Values{}
	if opts != nil {
		if opts.User != "" {
			values.Set("user", opts.User)
		}
		if opts.TsFrom != "" {
			values.Set("ts_from", opts.TsFrom)
		}
		if opts.TsTo != "" {
			values.Set("ts_to", opts.TsTo)
		}
		if opts.Types != "" {
			values.Set("types", opts.Types)
		}
		if opts.Count > 0 {
			values.Set("count", strconv.Itoa(opts.Count))
		}
		if opts.Page > 0 {
			values.Set("page", strconv.Itoa(opts.Page))
		}
	}
	return authedCall[FilesListResponse](ctx, c, "files.list", token, values)
}
