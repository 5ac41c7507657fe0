// Package dnsprobe resolves the mail related DNS records of a domain (MX, SPF
// and DMARC) and classifies how easily mail from the domain can be spoofed.
//
// Lookups never fail the probe: every record type degrades to "absent" on its
// own, and the cause is kept as a typed error for logs and tests.
package dnsprobe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"emailrep/pkg/serrors"

	"github.com/miekg/dns"
)

const defaultResolvConf = "/etc/resolv.conf"

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// Servers are host:port nameservers. The first one is queried; when empty,
	// the first nameserver of /etc/resolv.conf is used.
	Servers []string
	// Timeout bounds every single query.
	Timeout time.Duration
}

// Resolver sends single DNS queries with a per-query timeout. It distinguishes
// NXDOMAIN or empty answers (serrors.ErrNotFound) from timeouts
// (serrors.ErrTimeout) and other transport failures (serrors.ErrUnavailable).
type Resolver struct {
	udp    *dns.Client
	tcp    *dns.Client
	server string
}

// NewResolver creates a Resolver from opts.
func NewResolver(opts ResolverOptions) (*Resolver, error) {
	servers := opts.Servers
	if len(servers) == 0 {
		cc, err := dns.ClientConfigFromFile(defaultResolvConf)
		if err != nil {
			return nil, fmt.Errorf("could not read resolver config: %w", err)
		}
		for _, s := range cc.Servers {
			servers = append(servers, net.JoinHostPort(s, cc.Port))
		}
	}
	if len(servers) == 0 {
		return nil, errors.New("no DNS servers configured")
	}

	return &Resolver{
		udp:    &dns.Client{Net: "udp", Timeout: opts.Timeout},
		tcp:    &dns.Client{Net: "tcp", Timeout: opts.Timeout},
		server: servers[0],
	}, nil
}

// Exchange asks the configured server for name/qtype and returns the answer
// section. A truncated UDP reply is asked again over TCP.
func (r *Resolver) Exchange(ctx context.Context, name string, qtype uint16) ([]dns.RR, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), qtype)
	m.RecursionDesired = true

	in, _, err := r.udp.ExchangeContext(ctx, m, r.server)
	if err == nil && in.Truncated {
		in, _, err = r.tcp.ExchangeContext(ctx, m, r.server)
	}
	if err != nil {
		return nil, classify(ctx, err, name, qtype)
	}

	switch in.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, serrors.With(serrors.ErrNotFound, "%s %s: NXDOMAIN", dns.TypeToString[qtype], name)
	default:
		return nil, serrors.With(serrors.ErrUnavailable, "%s %s: %s",
			dns.TypeToString[qtype], name, dns.RcodeToString[in.Rcode])
	}

	answers := make([]dns.RR, 0, len(in.Answer))
	for _, rr := range in.Answer {
		if rr.Header().Rrtype == qtype {
			answers = append(answers, rr)
		}
	}
	if len(answers) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "%s %s: no records", dns.TypeToString[qtype], name)
	}

	return answers, nil
}

// MX returns the exchange hosts of name in answer order, without the root dot.
func (r *Resolver) MX(ctx context.Context, name string) ([]string, error) {
	rrs, err := r.Exchange(ctx, name, dns.TypeMX)
	if err != nil {
		return nil, err
	}

	hosts := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		hosts = append(hosts, strings.TrimSuffix(rr.(*dns.MX).Mx, "."))
	}

	return hosts, nil
}

// TXT returns the TXT records of name. The character-strings of a record are
// concatenated, so the values carry no quoting.
func (r *Resolver) TXT(ctx context.Context, name string) ([]string, error) {
	rrs, err := r.Exchange(ctx, name, dns.TypeTXT)
	if err != nil {
		return nil, err
	}

	records := make([]string, 0, len(rrs))
	for _, rr := range rrs {
		records = append(records, strings.Join(rr.(*dns.TXT).Txt, ""))
	}

	return records, nil
}

// A returns the IPv4 addresses of name.
func (r *Resolver) A(ctx context.Context, name string) ([]net.IP, error) {
	rrs, err := r.Exchange(ctx, name, dns.TypeA)
	if err != nil {
		return nil, err
	}

	ips := make([]net.IP, 0, len(rrs))
	for _, rr := range rrs {
		ips = append(ips, rr.(*dns.A).A)
	}

	return ips, nil
}

func classify(ctx context.Context, err error, name string, qtype uint16) error {
	var netErr net.Error
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return serrors.Wrap(serrors.ErrTimeout, err, "%s %s", dns.TypeToString[qtype], name)
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "%s %s", dns.TypeToString[qtype], name)
}
