package webapi

import (
	"context"
	"net/http"
)

// AuthTestResponse identifies the authenticated user and team.
type AuthTestResponse struct {
	URL    string `json:"url"`
	Team   string `json:"team"`
	User   string `json:"user"`
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
}

// AuthTest checks authentication and tells who you are.
//
// Wraps https://api.slack.com/methods/auth.test
func AuthTest(ctx context.Context, c *http.Client, token string) (*AuthTestResponse, error) {
	return authedCall[AuthTestResponse](ctx, c, "auth.test", token, nil)
}
