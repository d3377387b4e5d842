package user

import (
	"fmt"
	"net/url"
)

// AvatarURL derives a deterministic avatar image URL from a display name.
// Computed once at registration; renames do not regenerate it.
func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
