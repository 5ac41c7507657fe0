package reputation

import (
	"context"

	"emailrep/pkg/domain"
)

//go:generate mockgen -package mockreputation -source=interface.go -destination=mock/mockreputation.go *
type Evaluator interface {
	Evaluate(ctx context.Context, address string) (*domain.Verdict, error)
	Enqueue(ctx context.Context, addresses []string) (int, error)
	Domain(ctx context.Context, name string) (*domain.DomainVerdict, error)
	Email(ctx context.Context, address string) (*domain.Verdict, error)
}

// MailAuthProbe resolves MX, SPF and DMARC. Failures are carried in the result.
type MailAuthProbe interface {
	Resolve(ctx context.Context, domainName string) domain.MailAuth
}

// DeliverabilityProbe runs the SMTP mailbox check against mxHost.
type DeliverabilityProbe interface {
	Probe(ctx context.Context, address, mxHost, domainName string) (domain.Deliverability, error)
}

// AgeProbe returns a domain's age in days, or domain.UnknownAge with an error.
type AgeProbe interface {
	AgeDays(ctx context.Context, domainName string) (int, error)
}

// BlocklistProbe checks a remote domain blocklist.
type BlocklistProbe interface {
	IsListed(ctx context.Context, domainName string) (bool, error)
}

// StaticLists answers membership in the lists loaded at start.
type StaticLists interface {
	IsDisposable(domainName string) bool
	IsPhishing(domainName string) bool
	IsSuspiciousTLD(tld string) bool
}
