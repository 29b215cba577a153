package webapi

import (
	"context"
	"net/http"
	"net/url"
)

// OAuthAccessResponse is the reply to oauth.access.
type OAuthAccessResponse struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
}

// OAuthAccess exchanges a temporary OAuth code for an API token. This
// is the only method that is not token-authenticated; redirectURI may
// be empty.
//
// Wraps https://api.slack.com/methods/oauth.access
func OAuthAccess(ctx context.Context, c *http.Client, clientID, clientSecret, code, redirectURI string) (*OAuthAccessResponse, error) {
	values := url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"code":          {code},
	}
	if redirectURI != "" {
		values.Set("redirect_uri", redirectURI)
	}
	return call[OAuthAccessResponse](ctx, c, "oauth.access", values)
}
