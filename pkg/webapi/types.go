package webapi

// Slack timestamps ("ts" fields) are dotted strings of unix seconds
// and a 6-digit subsecond suffix. They double as opaque message ids,
// so they are carried as strings everywhere and never parsed into a
// binary float.

// Reaction is the reaction object found in the [File] type and in
// some message payloads. It appears nested under messages, files,
// and comments uniformly.
type Reaction struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// Comment is the file-comment object found in the [File] type and
// the files.info response.
type Comment struct {
	ID        string     `json:"id"`
	Timestamp int64      `json:"timestamp"`
	User      string     `json:"user"`
	Comment   string     `json:"comment"`
	Reactions []Reaction `json:"reactions,omitempty"`
}

// File is the Slack file type. See https://api.slack.com/types/file.
type File struct {
	ID                 string     `json:"id"`
	Created            int64      `json:"created,omitempty"`
	Timestamp          int64      `json:"timestamp,omitempty"`
	Name               string     `json:"name,omitempty"`
	Title              string     `json:"title"`
	Mimetype           string     `json:"mimetype"`
	Filetype           string     `json:"filetype"`
	PrettyType         string     `json:"pretty_type"`
	User               string     `json:"user"`
	Mode               string     `json:"mode"`
	Editable           bool       `json:"editable"`
	IsExternal         bool       `json:"is_external"`
	ExternalType       string     `json:"external_type"`
	Size               int64      `json:"size"`
	URL                string     `json:"url"`
	URLDownload        string     `json:"url_download,omitempty"`
	URLPrivate         string     `json:"url_private"`
	URLPrivateDownload string     `json:"url_private_download"`
	Thumb64            string     `json:"thumb_64"`
	Thumb80            string     `json:"thumb_80"`
	Thumb360           string     `json:"thumb_360"`
	Thumb360Gif        string     `json:"thumb_360_gif,omitempty"`
	Thumb360W          int        `json:"thumb_360_w"`
	Thumb360H          int        `json:"thumb_360_h"`
	Permalink          string     `json:"permalink"`
	EditLink           string     `json:"edit_link,omitempty"`
	Preview            string     `json:"preview,omitempty"`
	PreviewHighlight   string     `json:"preview_highlight,omitempty"`
	Lines              int        `json:"lines,omitempty"`
	LinesMore          int        `json:"lines_more,omitempty"`
	IsPublic           bool       `json:"is_public"`
	PublicURLShared    bool       `json:"public_url_shared"`
	Channels           []string   `json:"channels"`
	Groups             []string   `json:"groups"`
	Ims                []string   `json:"ims,omitempty"`
	InitialComment     *Comment   `json:"initial_comment,omitempty"`
	NumStars           int        `json:"num_stars,omitempty"`
	IsStarred          bool       `json:"is_starred,omitempty"`
	PinnedTo           []string   `json:"pinned_to,omitempty"`
	Reactions          []Reaction `json:"reactions,omitempty"`
}

// Pagination is the paging object found in API methods that return
// pages of items.
type Pagination struct {
	Count int `json:"count"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// Topic is the topic object found in the [Channel] and [Group] types.
type Topic struct {
	Value   string `json:"value"`
	Creator string `json:"creator"`
	LastSet int64  `json:"last_set"`
}

// Purpose is the purpose object found in the [Channel] and [Group]
// types.
type Purpose struct {
	Value   string `json:"value"`
	Creator string `json:"creator"`
	LastSet int64  `json:"last_set"`
}

// Channel is the Slack channel type.
// See https://api.slack.com/types/channel.
type Channel struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	IsChannel          bool     `json:"is_channel"`
	Created            int64    `json:"created"`
	Creator            string   `json:"creator"`
	IsArchived         bool     `json:"is_archived"`
	IsGeneral          bool     `json:"is_general"`
	Members            []string `json:"members,omitempty"`
	Topic              *Topic   `json:"topic,omitempty"`
	Purpose            *Purpose `json:"purpose,omitempty"`
	IsMember           bool     `json:"is_member"`
	LastRead           string   `json:"last_read,omitempty"`
	UnreadCount        int64    `json:"unread_count,omitempty"`
	UnreadCountDisplay int64    `json:"unread_count_display,omitempty"`
}

// Group is the Slack private-group type.
// See https://api.slack.com/types/group.
type Group struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	IsGroup            bool     `json:"is_group"`
	Created            int64    `json:"created"`
	Creator            string   `json:"creator"`
	IsArchived         bool     `json:"is_archived"`
	Members            []string `json:"members,omitempty"`
	Topic              *Topic   `json:"topic,omitempty"`
	Purpose            *Purpose `json:"purpose,omitempty"`
	LastRead           string   `json:"last_read,omitempty"`
	UnreadCount        int64    `json:"unread_count,omitempty"`
	UnreadCountDisplay int64    `json:"unread_count_display,omitempty"`
}

// Im is the Slack direct-message channel type.
// See https://api.slack.com/types/im.
type Im struct {
	ID            string `json:"id"`
	IsIm          bool   `json:"is_im"`
	User          string `json:"user"`
	Created       int64  `json:"created"`
	IsUserDeleted bool   `json:"is_user_deleted,omitempty"`
}

// UserProfile is the profile object that belongs to a [User].
type UserProfile struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	RealName  string `json:"real_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Skype     string `json:"skype,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Image24   string `json:"image_24"`
	Image32   string `json:"image_32"`
	Image48   string `json:"image_48"`
	Image72   string `json:"image_72"`
	Image192  string `json:"image_192"`
}

// User is the Slack user type. See https://api.slack.com/types/user.
type User struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Deleted           bool        `json:"deleted"`
	Color             string      `json:"color,omitempty"`
	Profile           UserProfile `json:"profile"`
	IsAdmin           *bool       `json:"is_admin,omitempty"`
	IsOwner           *bool       `json:"is_owner,omitempty"`
	IsPrimaryOwner    *bool       `json:"is_primary_owner,omitempty"`
	IsRestricted      *bool       `json:"is_restricted,omitempty"`
	IsUltraRestricted *bool       `json:"is_ultra_restricted,omitempty"`
	Has2FA            *bool       `json:"has_2fa,omitempty"`
	TwoFactorType     string      `json:"two_factor_type,omitempty"`
	HasFiles          *bool       `json:"has_files,omitempty"`
}

// Team is the team object found in the rtm.start response. Slack
// has nested some of these fields under "prefs" over time; unknown
// fields are ignored so either shape decodes.
type Team struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	EmailDomain       string `json:"email_domain"`
	Domain            string `json:"domain"`
	MsgEditWindowMins int64  `json:"msg_edit_window_mins,omitempty"`
	OverStorageLimit  bool   `json:"over_storage_limit"`
	Plan              string `json:"plan"`
}

// SelfData is the identity of the authenticated bot or user, as
// found in the rtm.start response.
type SelfData struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Created        int64  `json:"created"`
	ManualPresence string `json:"manual_presence"`
}

// Bot is the abridged bot record found in the rtm.start response.
type Bot struct {
	ID      string            `json:"id"`
	Deleted bool              `json:"deleted,omitempty"`
	Name    string            `json:"name"`
	Icons   map[string]string `json:"icons,omitempty"`
}

// AttachmentField is a single field within an [Attachment].
type AttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// Attachment is the Slack attachment object found in richly-formatted
// messages. See https://api.slack.com/docs/attachments.
type Attachment struct {
	Fallback   string            `json:"fallback"`
	Color      string            `json:"color,omitempty"`
	Pretext    string            `json:"pretext,omitempty"`
	AuthorName string            `json:"author_name,omitempty"`
	AuthorLink string            `json:"author_link,omitempty"`
	AuthorIcon string            `json:"author_icon,omitempty"`
	Title      string            `json:"title,omitempty"`
	TitleLink  string            `json:"title_link,omitempty"`
	Text       string            `json:"text"`
	Fields     []AttachmentField `json:"fields,omitempty"`
	ImageURL   string            `json:"image_url,omitempty"`
	ThumbURL   string            `json:"thumb_url,omitempty"`
}
