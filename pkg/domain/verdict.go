package domain

import "time"

// NeverSeen is reported in place of a timestamp for an address without history.
const NeverSeen = "Never"

// HistoryTimeLayout formats history timestamps (UTC, second precision).
const HistoryTimeLayout = "2006-01-02T15:04:05"

// FormatHistoryTime renders t with HistoryTimeLayout, or NeverSeen for the zero time.
func FormatHistoryTime(t time.Time) string {
	if t.IsZero() {
		return NeverSeen
	}

	return t.UTC().Format(HistoryTimeLayout)
}

// FormatHistory renders the audit timestamps of history, with NeverSeen for
// both when history is nil.
func FormatHistory(history *History) (firstSeen, lastUpdated string) {
	if history == nil {
		return NeverSeen, NeverSeen
	}

	return FormatHistoryTime(history.FirstSeen), FormatHistoryTime(history.LastUpdated)
}

// EmailVerdict is the address part of a verdict.
type EmailVerdict struct {
	Address     string `json:"address"`
	Valid       bool   `json:"valid"`
	Deliverable bool   `json:"deliverable"`
	Spoofable   bool   `json:"spoofable"`
	FirstSeen   string `json:"first_seen"`
	LastUpdated string `json:"last_updated"`
}

// DomainVerdict is the domain part of a verdict. Absent records are nil.
type DomainVerdict struct {
	DomainName       string  `json:"domain_name"`
	TLD              string  `json:"tld"`
	SuspiciousTLD    bool    `json:"suspicious_tld"`
	PrimaryMX        *string `json:"primary_mx"`
	SPFRecord        *string `json:"spf_record"`
	DMARCRecord      *string `json:"dmarc_record"`
	CatchAll         bool    `json:"catch_all"`
	DaysSinceCreated int     `json:"domain_days_since_creation"`
	NewDomain        bool    `json:"new_domain"`
	DisposableDomain bool    `json:"disposable_domain"`
	SpamDomain       bool    `json:"spam_domain"`
	PhishingDomain   bool    `json:"phishing_domain"`
}

// Reputation is the scored part of a verdict.
type Reputation struct {
	Text  Label `json:"text"`
	Score int   `json:"score"`
}

// Verdict is the full result of evaluating an address.
type Verdict struct {
	Email      EmailVerdict  `json:"email"`
	Domain     DomainVerdict `json:"domain"`
	Reputation Reputation    `json:"reputation"`
}

// NewDomainVerdict converts a domain signal into its response shape.
func NewDomainVerdict(d DomainSignal) DomainVerdict {
	return DomainVerdict{
		DomainName:       d.Name,
		TLD:              d.TLD,
		SuspiciousTLD:    d.IsSuspicious,
		PrimaryMX:        optional(d.PrimaryMX),
		SPFRecord:        optional(d.SPFRecord),
		DMARCRecord:      optional(d.DMARCRecord),
		CatchAll:         d.IsCatchAll,
		DaysSinceCreated: d.AgeDays,
		NewDomain:        d.IsNew,
		DisposableDomain: d.IsDisposable,
		SpamDomain:       d.IsSpam,
		PhishingDomain:   d.IsPhishing,
	}
}

// NewVerdict assembles the response for an evaluated address. history describes
// the state before the evaluation and may be nil for an unseen address.
func NewVerdict(email EmailSignal, d DomainSignal, history *History) Verdict {
	ev := EmailVerdict{
		Address:     email.Address,
		Valid:       email.Valid,
		Deliverable: email.Deliverable,
		Spoofable:   email.Spoofable,
	}
	ev.FirstSeen, ev.LastUpdated = FormatHistory(history)

	return Verdict{
		Email:      ev,
		Domain:     NewDomainVerdict(d),
		Reputation: Reputation{Text: email.Label, Score: email.Score},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
