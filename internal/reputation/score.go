package reputation

import (
	"emailrep/pkg/domain"
	"emailrep/pkg/probe/dnsprobe"
)

// Weights applied by Score.
const (
	WeightSPF              = 2
	WeightDMARC            = 2
	WeightStrongDMARC      = 2
	WeightAggregateReports = 1
	WeightForensicReports  = 1
	WeightDeliverable      = 2
	WeightUndeliverable    = -2
	WeightRandom           = -2
	WeightSpam             = -4
	WeightPhishing         = -5
	WeightDisposable       = -3
	WeightNewDomain        = -4
	WeightSuspiciousTLD    = -2
	WeightSpoofable        = -2
	WeightCatchAll         = -1
)

// Signals is the flat set of boolean facts that Score weighs.
type Signals struct {
	SPF              bool
	DMARC            bool
	StrongDMARC      bool
	AggregateReports bool
	ForensicReports  bool
	Deliverable      bool
	Random           bool
	Spam             bool
	Phishing         bool
	Disposable       bool
	NewDomain        bool
	SuspiciousTLD    bool
	Spoofable        bool
	CatchAll         bool
}

// NewSignals derives Signals from the collected domain and address facts.
func NewSignals(d domain.DomainSignal, deliverable, spoofable, random bool) Signals {
	dmarc := dnsprobe.ParseDMARC(d.DMARCRecord)

	return Signals{
		SPF:              d.SPFRecord != "",
		DMARC:            d.DMARCRecord != "",
		StrongDMARC:      dmarc.Strong(),
		AggregateReports: dmarc.AggregateReports != "",
		ForensicReports:  dmarc.ForensicReports != "",
		Deliverable:      deliverable,
		Random:           random,
		Spam:             d.IsSpam,
		Phishing:         d.IsPhishing,
		Disposable:       d.IsDisposable,
		NewDomain:        d.IsNew,
		SuspiciousTLD:    d.IsSuspicious,
		Spoofable:        spoofable,
		CatchAll:         d.IsCatchAll,
	}
}

// Score sums the weight of every signal that is set and labels the total.
func Score(s Signals) (domain.Label, int) {
	score := 0
	add := func(set bool, weight int) {
		if set {
			score += weight
		}
	}

	add(s.SPF, WeightSPF)
	add(s.DMARC, WeightDMARC)
	add(s.StrongDMARC, WeightStrongDMARC)
	add(s.AggregateReports, WeightAggregateReports)
	add(s.ForensicReports, WeightForensicReports)
	add(s.Deliverable, WeightDeliverable)
	add(!s.Deliverable, WeightUndeliverable)
	add(s.Random, WeightRandom)
	add(s.Spam, WeightSpam)
	add(s.Phishing, WeightPhishing)
	add(s.Disposable, WeightDisposable)
	add(s.NewDomain, WeightNewDomain)
	add(s.SuspiciousTLD, WeightSuspiciousTLD)
	add(s.Spoofable, WeightSpoofable)
	add(s.CatchAll, WeightCatchAll)

	return LabelFor(score), score
}

// LabelFor maps a score to its label.
func LabelFor(score int) domain.Label {
	switch {
	case score >= 10:
		return domain.LabelExcellent
	case score >= 5:
		return domain.LabelGood
	case score >= 0:
		return domain.LabelNeutral
	case score >= -5:
		return domain.LabelPoor
	default:
		return domain.LabelAwful
	}
}
