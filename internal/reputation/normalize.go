package reputation

import (
	"regexp"
	"strings"

	"emailrep/pkg/serrors"
)

// addressPattern is the syntax every address must match before it is probed.
var addressPattern = regexp.MustCompile(`^[_a-z0-9-]+(\.[_a-z0-9-]+)*@[a-z0-9-]+(\.[a-z0-9-]+)*(\.[a-z]{2,4})$`)

// NormalizeAddress trims and lower-cases raw and checks its syntax.
func NormalizeAddress(raw string) (string, error) {
	address := strings.ToLower(strings.TrimSpace(raw))
	if address == "" {
		return "", serrors.With(serrors.ErrBadRequest, "email address is required")
	}
	if !addressPattern.MatchString(address) {
		return "", serrors.With(serrors.ErrBadRequest, "invalid email address: %q", raw)
	}

	return address, nil
}

// SplitAddress returns the local part, the domain and the top-level label of
// a normalized address.
func SplitAddress(address string) (local, domainName, tld string) {
	local, domainName, _ = strings.Cut(address, "@")
	tld = domainName[strings.LastIndex(domainName, ".")+1:]

	return local, domainName, tld
}
