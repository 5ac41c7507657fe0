package domain

import "time"

const (
	// UnknownAge is the age reported when a domain's creation date could not be determined.
	UnknownAge = -1
	// NewDomainDays is the age in days below which a domain counts as newly registered.
	NewDomainDays = 30
)

// IsNewDomain reports whether a domain of the given age is newly registered.
// UnknownAge is never new.
func IsNewDomain(ageDays int) bool {
	return ageDays >= 0 && ageDays < NewDomainDays
}

// MailAuth is the outcome of the DNS probe for a domain. Empty strings mean the
// record is absent; the matching error explains why when a lookup failed.
type MailAuth struct {
	// MX is the first mail exchanger host without the trailing root dot.
	MX string
	// SPF is the first TXT record carrying the SPF version tag.
	SPF string
	// DMARC is the first TXT record at _dmarc.<domain> carrying the DMARC version tag.
	DMARC string
	// Spoofable is set when SPF or DMARC is absent, SPF allows all senders or
	// DMARC is monitor-only.
	Spoofable bool

	MXErr    error
	SPFErr   error
	DMARCErr error
}

// Deliverability is the outcome of the SMTP probe.
type Deliverability struct {
	Deliverable bool
	CatchAll    bool
	// TargetCode and ControlCode are the RCPT reply codes, zero when not reached.
	TargetCode  int
	ControlCode int
}

// DomainSignal is the per-domain snapshot computed by an evaluation and
// persisted as the latest known state of the domain.
type DomainSignal struct {
	Name         string
	TLD          string
	PrimaryMX    string
	SPFRecord    string
	DMARCRecord  string
	AgeDays      int
	IsNew        bool
	IsDisposable bool
	IsSpam       bool
	IsPhishing   bool
	IsSuspicious bool
	IsCatchAll   bool
	FirstSeen    time.Time
	LastUpdated  time.Time
}

// EmailSignal is the per-address outcome of an evaluation.
type EmailSignal struct {
	Address     string
	Score       int
	Label       Label
	Valid       bool
	Deliverable bool
	Spoofable   bool
	FirstSeen   time.Time
	LastUpdated time.Time
}

// History holds the audit timestamps of a previously stored address.
type History struct {
	FirstSeen   time.Time
	LastUpdated time.Time
}
