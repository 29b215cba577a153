// Get info on members of your Slack team.

package webapi

import (
	"context"
	"net/http"
	"net/url"
)

// UsersGetPresenceResponse is the reply to users.getPresence. The
// fields beyond Presence are only returned when querying the
// authenticated user.
type UsersGetPresenceResponse struct {
	Presence        string `json:"presence"`
	Online          *bool  `json:"online,omitempty"`
	AutoAway        *bool  `json:"auto_away,omitempty"`
	ManualAway      *bool  `json:"manual_away,omitempty"`
	ConnectionCount int    `json:"connection_count,omitempty"`
	LastActivity    int64  `json:"last_activity,omitempty"`
}

// UsersGetPresence gets a user's presence information.
//
// Wraps https://api.slack.com/methods/users.getPresence
func UsersGetPresence(ctx context.Context, c *http.Client, token, user string) (*UsersGetPresenceResponse, error) {
	values := url.Values{"user": {user}}
	return authedCall[UsersGetPresenceResponse](ctx, c, "users.getPresence", token, values)
}

// UsersInfoResponse is the reply to users.info.
type UsersInfoResponse struct {
	User User `json:"user"`
}

// UsersInfo gets information about a team member.
//
// Wraps https://api.slack.com/methods/users.info
func UsersInfo(ctx context.Context, c *http.Client, token, user string) (*UsersInfoResponse, error) {
	values := url.Values{"user": {user}}
	return authedCall[UsersInfoResponse](ctx, c, "users.info", token, values)
}

// UsersListResponse is the reply to users.list.
type UsersListResponse struct {
	Members []User `json:"members"`
}

// UsersList lists all users in a Slack team. presence may be nil to
// use the server default.
//
// Wraps https://api.slack.com/methods/users.list
func UsersList(ctx context.Context, c *http.Client, token string, presence *bool) (*UsersListResponse, error) {
	values := url.Values{}
	if presence != nil {
		values.Set("presence", boolParam(*presence))
	}
	return authedCall[UsersListResponse](ctx, c, "users.list", token, values)
}

// UsersSetActiveResponse is the reply to users.setActive.
type UsersSetActiveResponse struct{}

// UsersSetActive marks the calling user as active.
//
// Wraps https://api.slack.com/methods/users.setActive
func UsersSetActive(ctx context.Context, c *http.Client, token string) (*UsersSetActiveResponse, error) {
	return authedCall[UsersSetActiveResponse](ctx, c, "users.setActive", token, nil)
}

// UsersSetPresenceResponse is the reply to users.setPresence.
type UsersSetPresenceResponse struct{}

// UsersSetPresence manually sets the calling user's presence; valid
// values are "auto" and "away".
//
// Wraps https://api.slack.com/methods/users.setPresence
func UsersSetPresence(ctx context.Context, c *http.Client, token, presence string) (*UsersSetPresenceResponse, error) {
	values := url.Values{"presence": {presence}}
	return authedCall[UsersSetPresenceResponse](ctx, c, "users.setPresence", token, values)
}
