package auth

import (
	"os"
	"strings"
)

// AdminInbox receives lead-form notifications and is always on the
// allow-list.
const AdminInbox = "folukt3@gmail.com"

// Allowlist is the fixed set of administrator emails checked after the
// identity provider has verified a token. Matching is case-insensitive.
type Allowlist map[string]struct{}

// NewAllowlist builds the admin set from ADMIN_EMAILS (comma-separated)
// plus the fixed admin inbox.
func NewAllowlist() Allowlist {
	list := Allowlist{strings.ToLower(AdminInbox): {}}
	for _, email := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			list[email] = struct{}{}
		}
	}
	return list
}

func (a Allowlist) Contains(email string) bool {
	_, ok := a[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
