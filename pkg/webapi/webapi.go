// Package webapi is a low-level, direct binding for the
// [Slack Web API].
//
// Each exported function wraps exactly one API method: it builds the
// query string, issues an HTTPS GET with the caller's HTTP client,
// checks the top-level "ok" field, and decodes the typed response.
// The package keeps no state of its own and never retries.
//
// [Slack Web API]: https://api.slack.com/methods
package webapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

const apiBase = "https://slack.com/api/"

// fetch issues a GET request for a single Web API method and returns
// the raw response body after enforcing the "ok" envelope.
func fetch(ctx context.Context, c *http.Client, method string, values url.Values) ([]byte, error) {
	u := apiBase + method
	if len(values) > 0 {
		u += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, newError(ErrURL, "failed to construct HTTP request", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, newError(ErrTransport, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(ErrTransport, "failed to read HTTP response body", err)
	}

	if err := checkOK(body); err != nil {
		return nil, err
	}
	return body, nil
}

// call fetches a Web API method and decodes the response body into T.
// The body must be a JSON object carrying "ok": true; anything else
// is surfaced as an *Error that preserves the raw body for the caller
// to inspect.
func call[T any](ctx context.Context, c *http.Client, method string, values url.Values) (*T, error) {
	body, err := fetch(ctx, c, method, values)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if err := json.Unmarshal(body, out); err != nil {
		return nil, &Error{Kind: ErrJSONDecode, Msg: "response did not match the expected shape", Raw: string(body), Err: err}
	}
	return out, nil
}

// authedCall is call with the caller's token inserted into the query.
// Every method except oauth.access is authenticated.
func authedCall[T any](ctx context.Context, c *http.Client, method, token string, values url.Values) (*T, error) {
	if values == nil {
		values = url.Values{}
	}
	values.Set("token", token)
	return call[T](ctx, c, method, values)
}

// checkOK enforces the Web API response envelope: a JSON object with
// a boolean "ok" field set to true.
func checkOK(body []byte) error {
	if !json.Valid(body) {
		return &Error{Kind: ErrJSONParse, Msg: "response body is not valid JSON", Raw: string(body)}
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return apiError("response is not a JSON object", string(body))
	}

	raw, found := probe["ok"]
	if !found {
		return apiError(`response has no "ok" field`, string(body))
	}

	var ok bool
	if err := json.Unmarshal(raw, &ok); err != nil {
		return apiError(`response "ok" field is not a boolean`, string(body))
	}
	if !ok {
		return apiError(`response "ok" field is false`, string(body))
	}
	return nil
}

// boolParam renders b the way legacy Slack methods expect ("1"/"0").
func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// boolParamNew renders b the way newer Slack methods expect
// ("true"/"false"). The rendering is per-method, not uniform.
func boolParamNew(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
