package domain_test

import (
	"testing"
	"time"

	"emailrep/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestIsNewDomain(t *testing.T) {
	cases := map[int]bool{
		domain.UnknownAge: false,
		0:                 true,
		29:                true,
		30:                false,
		9000:              false,
	}
	for age, want := range cases {
		require.Equal(t, want, domain.IsNewDomain(age), "age %d", age)
	}
}

func TestFormatHistory(t *testing.T) {
	first, last := domain.FormatHistory(nil)
	require.Equal(t, domain.NeverSeen, first)
	require.Equal(t, domain.NeverSeen, last)

	seen := time.Date(2024, 5, 1, 10, 30, 15, 900, time.FixedZone("CEST", 2*60*60))
	first, last = domain.FormatHistory(&domain.History{FirstSeen: seen})
	require.Equal(t, "2024-05-01T08:30:15", first)
	require.Equal(t, domain.NeverSeen, last)
}

func TestNewVerdict_AbsentRecordsAreNull(t *testing.T) {
	v := domain.NewVerdict(
		domain.EmailSignal{Address: "jane@example.org", Score: -3, Label: domain.LabelPoor, Valid: true},
		domain.DomainSignal{Name: "example.org", TLD: "org", SPFRecord: "v=spf1 -all", AgeDays: domain.UnknownAge},
		nil,
	)

	require.Nil(t, v.Domain.PrimaryMX)
	require.Nil(t, v.Domain.DMARCRecord)
	require.Equal(t, "v=spf1 -all", *v.Domain.SPFRecord)
	require.Equal(t, domain.UnknownAge, v.Domain.DaysSinceCreated)
	require.Equal(t, domain.NeverSeen, v.Email.FirstSeen)
	require.Equal(t, domain.Reputation{Text: domain.LabelPoor, Score: -3}, v.Reputation)
}
