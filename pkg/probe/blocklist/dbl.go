// Package blocklist answers blocklist membership questions for domains: a
// remote DNS blocklist zone and the static lists loaded at start.
package blocklist

import (
	"context"
	"errors"
	"net"
	"slices"
	"strings"

	"emailrep/pkg/serrors"
)

// DefaultZone is the Spamhaus domain blocklist.
const DefaultZone = "dbl.spamhaus.org"

// AddressLookuper resolves A records.
type AddressLookuper interface {
	A(ctx context.Context, name string) ([]net.IP, error)
}

// DBL queries a DNS domain blocklist zone.
type DBL struct {
	resolver AddressLookuper
	zone     string
}

// NewDBL creates a DBL for zone. An empty zone selects DefaultZone.
func NewDBL(resolver AddressLookuper, zone string) *DBL {
	zone = strings.Trim(zone, ".")
	if zone == "" {
		zone = DefaultZone
	}

	return &DBL{resolver: resolver, zone: zone}
}

// QueryName builds the name looked up for domainName: its labels in reverse
// order followed by zone.
func QueryName(domainName, zone string) string {
	labels := strings.Split(strings.Trim(strings.ToLower(domainName), "."), ".")
	slices.Reverse(labels)

	return strings.Join(labels, ".") + "." + strings.Trim(zone, ".")
}

// IsListed reports whether the zone has an entry for domainName. Any answer
// counts as listed, the zone's 127.255.255.x return codes included. NXDOMAIN
// is a clean "not listed"; lookup failures return false with an error.
func (d *DBL) IsListed(ctx context.Context, domainName string) (bool, error) {
	ips, err := d.resolver.A(ctx, QueryName(domainName, d.zone))
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return len(ips) > 0, nil
}
