package reputation_test

import (
	"testing"

	"emailrep/internal/reputation"
	"emailrep/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	valid := map[string]string{
		"jane.doe@example.org":      "jane.doe@example.org",
		"  Jane.Doe@Example.ORG ":   "jane.doe@example.org",
		"first_last-1@mail.co.uk":   "first_last-1@mail.co.uk",
		"x@sub-domain.example.info": "x@sub-domain.example.info",
	}
	for in, want := range valid {
		got, err := reputation.NormalizeAddress(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	for _, in := range []string{
		"",
		"   ",
		"plainaddress",
		"@example.org",
		"jane@",
		"jane@@example.org",
		"jane@example",
		"jane@example.c",
		"jane+tag@example.org",
		"jane..doe@example.org",
		".jane@example.org",
		"jane@exa_mple.org",
		"jane@example.org1",
		"a.b.c@example.travel",
	} {
		_, err := reputation.NormalizeAddress(in)
		require.ErrorIs(t, err, serrors.ErrBadRequest, in)
	}
}

func TestSplitAddress(t *testing.T) {
	local, domainName, tld := reputation.SplitAddress("jane.doe@mail.example.co.uk")
	require.Equal(t, "jane.doe", local)
	require.Equal(t, "mail.example.co.uk", domainName)
	require.Equal(t, "uk", tld)
}
