package reputation_test

import (
	"testing"

	"emailrep/internal/reputation"
	"emailrep/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestScore_OnlyDeliverable(t *testing.T) {
	label, score := reputation.Score(reputation.Signals{Deliverable: true})
	require.Equal(t, 2, score)
	require.Equal(t, domain.LabelNeutral, label)
}

func TestScore_NothingResolvable(t *testing.T) {
	// no MX, no SPF, no DMARC: spoofable once and undeliverable
	label, score := reputation.Score(reputation.Signals{Spoofable: true})
	require.Equal(t, -4, score)
	require.Equal(t, domain.LabelPoor, label)
}

func TestScore_BestCase(t *testing.T) {
	label, score := reputation.Score(reputation.Signals{
		SPF:              true,
		DMARC:            true,
		StrongDMARC:      true,
		AggregateReports: true,
		ForensicReports:  true,
		Deliverable:      true,
	})
	require.Equal(t, 10, score)
	require.Equal(t, domain.LabelExcellent, label)
}

func TestScore_WorstCase(t *testing.T) {
	label, score := reputation.Score(reputation.Signals{
		Random:        true,
		Spam:          true,
		Phishing:      true,
		Disposable:    true,
		NewDomain:     true,
		SuspiciousTLD: true,
		Spoofable:     true,
		CatchAll:      true,
	})
	require.Equal(t, -2-2-4-5-3-4-2-2-1, score)
	require.Equal(t, domain.LabelAwful, label)
}

func TestScore_Deterministic(t *testing.T) {
	s := reputation.Signals{SPF: true, DMARC: true, Deliverable: true, CatchAll: true, Random: true}
	l1, s1 := reputation.Score(s)
	l2, s2 := reputation.Score(s)
	require.Equal(t, l1, l2)
	require.Equal(t, s1, s2)
	require.Equal(t, 3, s1)
}

func TestLabelFor(t *testing.T) {
	cases := map[int]domain.Label{
		15: domain.LabelExcellent,
		10: domain.LabelExcellent,
		9:  domain.LabelGood,
		5:  domain.LabelGood,
		4:  domain.LabelNeutral,
		0:  domain.LabelNeutral,
		-1: domain.LabelPoor,
		-5: domain.LabelPoor,
		-6: domain.LabelAwful,
	}
	for score, want := range cases {
		require.Equal(t, want, reputation.LabelFor(score), score)
	}
}

func TestNewSignals(t *testing.T) {
	d := domain.DomainSignal{
		SPFRecord:    "v=spf1 -all",
		DMARCRecord:  "v=DMARC1; p=quarantine; rua=mailto:agg@example.org",
		IsNew:        true,
		IsDisposable: true,
		IsCatchAll:   true,
	}
	s := reputation.NewSignals(d, true, false, true)
	require.Equal(t, reputation.Signals{
		SPF:              true,
		DMARC:            true,
		StrongDMARC:      true,
		AggregateReports: true,
		Deliverable:      true,
		Random:           true,
		Disposable:       true,
		NewDomain:        true,
		CatchAll:         true,
	}, s)
}
