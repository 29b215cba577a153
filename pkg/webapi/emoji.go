package webapi

import (
	"context"
	"net/http"
)

// EmojiListResponse maps emoji names to image URLs or aliases.
type EmojiListResponse struct {
	Emoji map[string]string `json:"emoji"`
}

// EmojiList lists the custom emoji for a team.
//
// Wraps https://api.slack.com/methods/emoji.list
func EmojiList(ctx context.Context, c *http.Client, token string) (*EmojiListResponse, error) {
	return authedCall[EmojiListResponse](ctx, c, "emoji.list", token, nil)
}
