package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid does a best-effort MX/A lookup on the email's domain.
// Local-only domains (used for walk-in guest shells) are exempt.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if strings.HasSuffix(domain, ".local") {
		return true
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
