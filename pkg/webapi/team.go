// Get info about your team.

package webapi

import (
	"context"
	"net/http"
	"net/url"
)

// LoginInfo is one access-log entry: a user's signins from a single
// client.
type LoginInfo struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	DateFirst int64  `json:"date_first"`
	DateLast  int64  `json:"date_last"`
	Count     int    `json:"count"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	ISP       string `json:"isp"`
	Country   string `json:"country"`
	Region    string `json:"region"`
}

// TeamAccessLogsResponse is the reply to team.accessLogs.
type TeamAccessLogsResponse struct {
	Logins []LoginInfo `json:"logins"`
	Paging Pagination  `json:"paging"`
}

// TeamAccessLogs gets the access logs for the current team.
//
// Wraps https://api.slack.com/methods/team.accessLogs
func TeamAccessLogs(ctx context.Context, c *http.Client, token string, paging *PagingOptions) (*TeamAccessLogsResponse, error) {
	values := url.Values{}
	paging.encode(values)
	return authedCall[TeamAccessLogsResponse](ctx, c, "team.accessLogs", token, values)
}

// IconInfo is the set of team icon renditions.
type IconInfo struct {
	Image34      string `json:"image_34"`
	Image44      string `json:"image_44"`
	Image68      string `json:"image_68"`
	Image88      string `json:"image_88"`
	Image102     string `json:"image_102"`
	Image132     string `json:"image_132"`
	ImageDefault bool   `json:"image_default"`
}

// TeamDetails is the team record returned by team.info.
type TeamDetails struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Domain      string   `json:"domain"`
	EmailDomain string   `json:"email_domain"`
	Icon        IconInfo `json:"icon"`
}

// TeamInfoResponse is the reply to team.info.
type TeamInfoResponse struct {
	Team TeamDetails `json:"team"`
}

// TeamInfo gets information about the current team.
//
// Wraps https://api.slack.com/methods/team.info
func TeamInfo(ctx context.Context, c *http.Client, token string) (*TeamInfoResponse, error) {
	return authedCall[TeamInfoResponse](ctx, c, "team.info", token, nil)
}
