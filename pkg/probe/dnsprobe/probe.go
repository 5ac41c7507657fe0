package dnsprobe

import (
	"context"
	"strings"

	"emailrep/pkg/domain"
	"emailrep/pkg/serrors"
)

const (
	spfVersionTag   = "v=spf1"
	dmarcVersionTag = "v=dmarc1"
	dmarcPrefix     = "_dmarc."
)

// Lookuper is the subset of Resolver used by the probe.
type Lookuper interface {
	MX(ctx context.Context, name string) ([]string, error)
	TXT(ctx context.Context, name string) ([]string, error)
}

// Probe resolves MX, SPF and DMARC for a domain.
type Probe struct {
	resolver Lookuper
}

// New creates a Probe on top of resolver.
func New(resolver Lookuper) *Probe {
	return &Probe{resolver: resolver}
}

// Resolve looks up the mail records of name. It never fails: absent or
// unresolvable records are left empty and their cause is set on the result.
func (p *Probe) Resolve(ctx context.Context, name string) domain.MailAuth {
	var res domain.MailAuth

	hosts, err := p.resolver.MX(ctx, name)
	switch {
	case err != nil:
		res.MXErr = err
	case hosts[0] == "":
		// "MX 0 ." is a null MX: the domain accepts no mail
		res.MXErr = serrors.With(serrors.ErrNotFound, "MX %s: null MX", name)
	default:
		res.MX = hosts[0]
	}

	res.SPF, res.SPFErr = p.firstTagged(ctx, name, spfVersionTag)
	res.DMARC, res.DMARCErr = p.firstTagged(ctx, dmarcPrefix+name, dmarcVersionTag)
	res.Spoofable = Spoofable(res.SPF, res.DMARC)

	return res
}

func (p *Probe) firstTagged(ctx context.Context, name, tag string) (string, error) {
	records, err := p.resolver.TXT(ctx, name)
	if err != nil {
		return "", err
	}

	for _, rec := range records {
		if hasVersionTag(rec, tag) {
			return rec, nil
		}
	}

	return "", serrors.With(serrors.ErrNotFound, "TXT %s: no %s record", name, tag)
}

// Spoofable reports whether a domain with the given SPF and DMARC records can
// be impersonated: either record is absent, SPF allows every sender or DMARC
// only monitors. Any condition alone is enough.
func Spoofable(spf, dmarc string) bool {
	if spf == "" || dmarc == "" {
		return true
	}
	if AllowsAll(spf) {
		return true
	}

	return ParseDMARC(dmarc).Policy == "none"
}

// AllowsAll reports whether an SPF record ends in a pass-all mechanism
// ("+all", or "all" which defaults to the "+" qualifier).
func AllowsAll(spf string) bool {
	for _, term := range strings.Fields(strings.ToLower(spf)) {
		if term == "+all" || term == "all" {
			return true
		}
	}

	return false
}

// DMARC is the subset of DMARC tags that affect reputation.
type DMARC struct {
	// Policy is the lower-cased "p" tag.
	Policy string
	// AggregateReports is the "rua" tag.
	AggregateReports string
	// ForensicReports is the "ruf" tag.
	ForensicReports string
}

// Strong reports whether the policy rejects or quarantines failing mail.
func (d DMARC) Strong() bool {
	return d.Policy == "reject" || d.Policy == "quarantine"
}

// ParseDMARC extracts tags from a DMARC record. Unknown tags are ignored.
func ParseDMARC(record string) DMARC {
	var out DMARC
	for _, part := range strings.Split(record, ";") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "p":
			out.Policy = strings.ToLower(v)
		case "rua":
			out.AggregateReports = v
		case "ruf":
			out.ForensicReports = v
		}
	}

	return out
}

func hasVersionTag(record, tag string) bool {
	record = strings.TrimSpace(strings.Trim(record, `"`))
	if len(record) < len(tag) || !strings.EqualFold(record[:len(tag)], tag) {
		return false
	}
	// the tag must be a whole term: "v=spf10" is not SPF
	rest := record[len(tag):]

	return rest == "" || rest[0] == ' ' || rest[0] == ';'
}
