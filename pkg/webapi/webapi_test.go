package webapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

// fakeTransport serves a canned response body to every request and
// records the last request URL for query-string assertions.
type fakeTransport struct {
	body    string
	lastURL *url.URL
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.lastURL = req.URL
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(f.body)),
		Header:     make(http.Header),
	}, nil
}

func fakeClient(body string) (*http.Client, *fakeTransport) {
	f := &fakeTransport{body: body}
	return &http.Client{Transport: f}, f
}

func errKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	return apiErr.Kind
}

func TestCheckOK(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ErrorKind
		ok   bool
	}{
		{
			name: "ok_true",
			body: `{"ok": true}`,
			ok:   true,
		},
		{
			name: "ok_false",
			body: `{"ok": false, "err": "some_error"}`,
			want: ErrAPI,
		},
		{
			name: "missing_ok",
			body: `{"channel": "C1"}`,
			want: ErrAPI,
		},
		{
			name: "non_boolean_ok",
			body: `{"ok": "yes"}`,
			want: ErrAPI,
		},
		{
			name: "not_an_object",
			body: `[1, 2, 3]`,
			want: ErrAPI,
		},
		{
			name: "invalid_json",
			body: `{"ok": tru`,
			want: ErrJSONParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkOK([]byte(tt.body))
			if tt.ok {
				if err != nil {
					t.Fatalf("checkOK() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("checkOK() error = nil, want error")
			}
			if got := errKind(t, err); got != tt.want {
				t.Errorf("checkOK() error kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIErrorPreservesRawBody(t *testing.T) {
	body := `{"ok": false, "err": "some_error"}`
	hc, _ := fakeClient(body)

	_, err := AuthTest(context.Background(), hc, "TEST_TOKEN")
	if err == nil {
		t.Fatal("AuthTest() error = nil, want error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Kind != ErrAPI {
		t.Errorf("error kind = %v, want %v", apiErr.Kind, ErrAPI)
	}
	if apiErr.Raw != body {
		t.Errorf("error raw = %q, want %q", apiErr.Raw, body)
	}
}

func TestAuthedCallInsertsToken(t *testing.T) {
	hc, f := fakeClient(`{"ok": true}`)

	if _, err := UsersSetActive(context.Background(), hc, "TEST_TOKEN"); err != nil {
		t.Fatalf("UsersSetActive() error = %v", err)
	}

	if got := f.lastURL.Query().Get("token"); got != "TEST_TOKEN" {
		t.Errorf("token param = %q, want %q", got, "TEST_TOKEN")
	}
	if got := f.lastURL.Path; got != "/api/users.setActive" {
		t.Errorf("request path = %q, want %q", got, "/api/users.setActive")
	}
}

func TestOAuthAccessIsUnauthenticated(t *testing.T) {
	hc, f := fakeClient(`{"ok": true, "access_token": "xoxp-1", "scope": "read"}`)

	resp, err := OAuthAccess(context.Background(), hc, "CID", "CSECRET", "CODE", "")
	if err != nil {
		t.Fatalf("OAuthAccess() error = %v", err)
	}
	if resp.AccessToken != "xoxp-1" {
		t.Errorf("access token = %q, want %q", resp.AccessToken, "xoxp-1")
	}

	q := f.lastURL.Query()
	if _, found := q["token"]; found {
		t.Error("oauth.access request carries a token param")
	}
	if _, found := q["redirect_uri"]; found {
		t.Error("oauth.access request carries an empty redirect_uri param")
	}
	for _, kv := range []struct{ k, want string }{
		{"client_id", "CID"},
		{"client_secret", "CSECRET"},
		{"code", "CODE"},
	} {
		if got := q.Get(kv.k); got != kv.want {
			t.Errorf("%s param = %q, want %q", kv.k, got, kv.want)
		}
	}
}

func TestChannelsRename(t *testing.T) {
	hc, f := fakeClient(`{
		"ok": true,
		"channel": {
			"id": "C024BE91J",
			"is_channel": true,
			"name": "NEW_NAME",
			"created": 1444102158
		}
	}`)

	resp, err := ChannelsRename(context.Background(), hc, "TEST_TOKEN", "C024BE91J", "newname")
	if err != nil {
		t.Fatalf("ChannelsRename() error = %v", err)
	}
	if resp.Channel.Name != "NEW_NAME" {
		t.Errorf("channel name = %q, want %q", resp.Channel.Name, "NEW_NAME")
	}
	if resp.Channel.ID != "C024BE91J" {
		t.Errorf("channel id = %q, want %q", resp.Channel.ID, "C024BE91J")
	}

	q := f.lastURL.Query()
	if got := q.Get("channel"); got != "C024BE91J" {
		t.Errorf("channel param = %q, want %q", got, "C024BE91J")
	}
	if got := q.Get("name"); got != "newname" {
		t.Errorf("name param = %q, want %q", got, "newname")
	}
}

func TestChannelsHistoryParams(t *testing.T) {
	hc, f := fakeClient(`{"ok": true, "messages": [], "has_more": false}`)

	inclusive := true
	opts := &HistoryOptions{Latest: "1234.000001", Inclusive: &inclusive, Count: 100}
	if _, err := ChannelsHistory(context.Background(), hc, "TEST_TOKEN", "C1", opts); err != nil {
		t.Fatalf("ChannelsHistory() error = %v", err)
	}

	q := f.lastURL.Query()
	for _, kv := range []struct{ k, want string }{
		{"channel", "C1"},
		{"latest", "1234.000001"},
		{"inclusive", "1"},
		{"count", "100"},
	} {
		if got := q.Get(kv.k); got != kv.want {
			t.Errorf("%s param = %q, want %q", kv.k, got, kv.want)
		}
	}
	if _, found := q["oldest"]; found {
		t.Error("unset oldest option was encoded")
	}
}

func TestChatPostMessageBooleanRenderings(t *testing.T) {
	hc, f := fakeClient(`{"ok": true, "ts": "1.000001", "channel": "C1"}`)

	asUser := true
	linkNames := true
	unfurl := false
	opts := &PostMessageOptions{AsUser: &asUser, LinkNames: &linkNames, UnfurlLinks: &unfurl}
	if _, err := ChatPostMessage(context.Background(), hc, "TEST_TOKEN", "C1", "hi", opts); err != nil {
		t.Fatalf("ChatPostMessage() error = %v", err)
	}

	q := f.lastURL.Query()
	for _, kv := range []struct{ k, want string }{
		{"as_user", "true"},
		{"link_names", "1"},
		{"unfurl_links", "false"},
		{"text", "hi"},
	} {
		if got := q.Get(kv.k); got != kv.want {
			t.Errorf("%s param = %q, want %q", kv.k, got, kv.want)
		}
	}
}

func TestChannelsHistoryDecodesMessages(t *testing.T) {
	hc, _ := fakeClient(`{
		"ok": true,
		"messages": [
			{"type": "message", "user": "U024BE7LH", "text": "lol", "ts": "1444078138.000084"},
			{"type": "message", "subtype": "bot_message", "bot_id": "B1", "text": "beep", "ts": "1444078139.000085"}
		],
		"has_more": true
	}`)

	resp, err := ChannelsHistory(context.Background(), hc, "TEST_TOKEN", "C1", nil)
	if err != nil {
		t.Fatalf("ChannelsHistory() error = %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(resp.Messages))
	}

	std, ok := resp.Messages[0].(*StandardMessage)
	if !ok {
		t.Fatalf("messages[0] type = %T, want *StandardMessage", resp.Messages[0])
	}
	if std.Text != "lol" {
		t.Errorf("messages[0] text = %q, want %q", std.Text, "lol")
	}

	bot, ok := resp.Messages[1].(*BotMessage)
	if !ok {
		t.Fatalf("messages[1] type = %T, want *BotMessage", resp.Messages[1])
	}
	if bot.BotID != "B1" {
		t.Errorf("messages[1] bot id = %q, want %q", bot.BotID, "B1")
	}
}

func TestRtmStartSelfRename(t *testing.T) {
	hc, f := fakeClient(`{
		"ok": true,
		"url": "wss://ms9.slack-msgs.com/websocket/7I5yBpcvk",
		"self": {"id": "U023BECGF", "name": "bobby", "created": 1402463766, "manual_presence": "active"},
		"team": {"id": "T024BE7LD", "name": "Example Team", "email_domain": "", "domain": "example", "msg_edit_window_mins": -1, "over_storage_limit": false, "plan": "std"},
		"users": [], "channels": [], "groups": [], "ims": [], "bots": []
	}`)

	simpleLatest := true
	resp, err := RtmStart(context.Background(), hc, "TEST_TOKEN", &simpleLatest, nil)
	if err != nil {
		t.Fatalf("RtmStart() error = %v", err)
	}
	if resp.SelfData.Name != "bobby" {
		t.Errorf("self name = %q, want %q", resp.SelfData.Name, "bobby")
	}
	if resp.Team.Name != "Example Team" {
		t.Errorf("team name = %q, want %q", resp.Team.Name, "Example Team")
	}

	q := f.lastURL.Query()
	if got := q.Get("simple_latest"); got != "1" {
		t.Errorf("simple_latest param = %q, want %q", got, "1")
	}
	if _, found := q["no_unreads"]; found {
		t.Error("unset no_unreads option was encoded")
	}
}

func TestReactionsGetInlinedItem(t *testing.T) {
	hc, _ := fakeClient(`{
		"ok": true,
		"type": "message",
		"channel": "C1",
		"message": {"ts": "1.000001", "user": "U1", "text": "nice", "reactions": [{"name": "+1", "count": 2, "users": ["U2", "U3"]}]}
	}`)

	item, err := ReactionsGet(context.Background(), hc, "TEST_TOKEN", &ReactionTarget{Channel: "C1", Timestamp: "1.000001"}, "")
	if err != nil {
		t.Fatalf("ReactionsGet() error = %v", err)
	}

	msg, ok := item.(*MessageItem)
	if !ok {
		t.Fatalf("item type = %T, want *MessageItem", item)
	}
	std, ok := msg.Message.(*StandardMessage)
	if !ok {
		t.Fatalf("nested message type = %T, want *StandardMessage", msg.Message)
	}
	if len(std.Reactions) != 1 || std.Reactions[0].Name != "+1" {
		t.Errorf("reactions = %+v, want one +1 reaction", std.Reactions)
	}
}

func TestTransportError(t *testing.T) {
	hc := &http.Client{Transport: failingTransport{}}

	_, err := AuthTest(context.Background(), hc, "TEST_TOKEN")
	if err == nil {
		t.Fatal("AuthTest() error = nil, want error")
	}
	if got := errKind(t, err); got != ErrTransport {
		t.Errorf("error kind = %v, want %v", got, ErrTransport)
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}
