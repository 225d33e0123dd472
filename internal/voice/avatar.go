package voice

import (
	"net/url"
	"strings"
)

// placeholderBase generates initials avatars keyed by display name
const placeholderBase = "https://ui-avatars.com/api/?name="

// PlaceholderAvatar returns the generated placeholder image URI for name
func PlaceholderAvatar(name string) string {
	return placeholderBase + strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

// AvatarURL returns the avatar reference to display for v. Anything that is
// not an absolute http(s) URL falls back to the placeholder.
func AvatarURL(v Voice) string {
	u, err := url.Parse(v.Avatar)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return PlaceholderAvatar(v.Name)
	}
	return v.Avatar
}
