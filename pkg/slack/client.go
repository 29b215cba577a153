package slack

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tzrikka/slackrtm/pkg/webapi"
)

// RtmClient owns the API token, the rtm.start roster snapshot, and
// the outbound side of the RTM session. Construct it with [New], call
// [RtmClient.Login], and then [RtmClient.Run].
//
// Roster accessors return the handshake snapshot; the engine does not
// apply live events to it. The Update* methods replace a roster and
// its name-to-id map atomically from the Web API.
type RtmClient struct {
	token string
	hc    *http.Client

	readTimeout time.Duration

	mu         sync.RWMutex
	start      *webapi.RtmStartResponse
	channelIDs map[string]string
	groupIDs   map[string]string
	userIDs    map[string]string

	sender *Sender
}

// New returns a client that authenticates with the given token and
// uses [http.DefaultClient] for Web API calls. The token is never
// logged.
func New(token string) *RtmClient {
	return NewWithHTTPClient(token, http.DefaultClient)
}

// NewWithHTTPClient is [New] with a caller-supplied HTTP client, e.g.
// one with a custom timeout or transport.
func NewWithHTTPClient(token string, hc *http.Client) *RtmClient {
	return &RtmClient{
		token:       token,
		hc:          hc,
		readTimeout: readTimeout,
	}
}

// Login performs the rtm.start handshake, snapshots the team roster,
// and establishes the WebSocket. Pass the returned session to
// [RtmClient.Run].
func (c *RtmClient) Login(ctx context.Context) (*Session, error) {
	start, err := webapi.RtmStart(ctx, c.hc, c.token, nil, nil)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.start = start
	c.channelIDs = channelIDsByName(start.Channels)
	c.groupIDs = groupIDsByName(start.Groups)
	c.userIDs = userIDsByName(start.Users)
	c.mu.Unlock()

	conn, err := dialRTM(ctx, start.URL)
	if err != nil {
		return nil, err
	}

	c.sender = newSender()
	return &Session{conn: conn}, nil
}

// Name uniqueness is guaranteed by Slack, but a conflicting snapshot
// must not break the map: the last entry wins.

func channelIDsByName(channels []webapi.Channel) map[string]string {
	ids := make(map[string]string, len(channels))
	for _, ch := range channels {
		ids[ch.Name] = ch.ID
	}
	return ids
}

func groupIDsByName(groups []webapi.Group) map[string]string {
	ids := make(map[string]string, len(groups))
	for _, g := range groups {
		ids[g.Name] = g.ID
	}
	return ids
}

func userIDsByName(users []webapi.User) map[string]string {
	ids := make(map[string]string, len(users))
	for _, u := range users {
		ids[u.Name] = u.ID
	}
	return ids
}

// GetStartInfo returns the full rtm.start snapshot, or nil before
// login.
func (c *RtmClient) GetStartInfo() *webapi.RtmStartResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.start
}

// GetTeam returns the team record from the handshake snapshot.
func (c *RtmClient) GetTeam() (webapi.Team, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.start == nil {
		return webapi.Team{}, notLoggedIn()
	}
	return c.start.Team, nil
}

// GetSelf returns the authenticated caller's identity from the
// handshake snapshot.
func (c *RtmClient) GetSelf() (webapi.SelfData, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.start == nil {
		return webapi.SelfData{}, notLoggedIn()
	}
	return c.start.SelfData, nil
}

// GetUsers returns the cached user roster.
func (c *RtmClient) GetUsers() []webapi.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.start == nil {
		return nil
	}
	return c.start.Users
}

// GetChannels returns the cached channel roster.
func (c *RtmClient) GetChannels() []webapi.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.start == nil {
		return nil
	}
	return c.start.Channels
}

// GetGroups returns the cached private group roster.
func (c *RtmClient) GetGroups() []webapi.Group {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.start == nil {
		return nil
	}
	return c.start.Groups
}

// GetStartIms returns the direct message channels open at handshake
// time.
func (c *RtmClient) GetStartIms() []webapi.Im {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.start == nil {
		return nil
	}
	return c.start.Ims
}

// GetUserID resolves a user name to its id via the cached map.
func (c *RtmClient) GetUserID(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, found := c.userIDs[name]
	return id, found
}

// GetChannelID resolves a channel name (without the leading '#') to
// its id via the cached map.
func (c *RtmClient) GetChannelID(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, found := c.channelIDs[name]
	return id, found
}

// GetGroupID resolves a private group name to its id via the cached
// map.
func (c *RtmClient) GetGroupID(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, found := c.groupIDs[name]
	return id, found
}

// GetSender returns the outbound queue handle, or nil before login.
// It may be retained and used from any goroutine while Run is active.
func (c *RtmClient) GetSender() *Sender {
	return c.sender
}

// GetMsgUID returns the next outbound message id.
func (c *RtmClient) GetMsgUID() (int64, error) {
	if c.sender == nil {
		return 0, notLoggedIn()
	}
	return c.sender.GetMsgUID(), nil
}

// Send queues a raw text frame on the RTM socket. See [Sender.Send].
func (c *RtmClient) Send(raw string) error {
	if c.sender == nil {
		return notLoggedIn()
	}
	return c.sender.Send(raw)
}

// SendMessage queues a chat message over the RTM socket. A channel
// argument starting with '#' is resolved against the cached
// name-to-id map; resolution failures do not touch the socket.
// Anything else is used as an id verbatim.
func (c *RtmClient) SendMessage(channel, text string) (int64, error) {
	if c.sender == nil {
		return 0, notLoggedIn()
	}
	id, err := c.resolveChannel(channel)
	if err != nil {
		return 0, err
	}
	return c.sender.SendMessageToID(id, text)
}

// SendTyping queues a typing indicator over the RTM socket, with the
// same channel resolution as [RtmClient.SendMessage].
func (c *RtmClient) SendTyping(channel string) (int64, error) {
	if c.sender == nil {
		return 0, notLoggedIn()
	}
	id, err := c.resolveChannel(channel)
	if err != nil {
		return 0, err
	}
	return c.sender.SendTypingToID(id)
}

func (c *RtmClient) resolveChannel(channel string) (string, error) {
	name, found := strings.CutPrefix(channel, "#")
	if !found {
		return channel, nil
	}
	id, found := c.GetChannelID(name)
	if !found {
		return "", &Error{Kind: ErrInternal, Msg: "unknown channel name: " + name}
	}
	return id, nil
}

func notLoggedIn() error {
	return &Error{Kind: ErrInternal, Msg: "not logged in"}
}
