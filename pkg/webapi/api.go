package webapi

import (
	"context"
	"net/http"
	"net/url"
)

// APITestResponse is the reply to api.test: the endpoint echoes back
// the arguments it was given.
type APITestResponse struct {
	Error string            `json:"error,omitempty"`
	Args  map[string]string `json:"args,omitempty"`
}

// APITest checks API calling code.
//
// Wraps https://api.slack.com/methods/api.test
func APITest(ctx context.Context, c *http.Client, token string, args map[string]string, errText string) (*APITestResponse, error) {
	values := url.Values{}
	if errText != "" {
		values.Set("error", errText)
	}
	for k, v := range args {
		values.Set(k, v)
	}
	return authedCall[APITestResponse](ctx, c, "api.test", token, values)
}
