package dnsprobe_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"emailrep/pkg/probe/dnsprobe"
	"emailrep/pkg/serrors"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

// zone answers from a static record set; names missing from it get NXDOMAIN.
type zone struct {
	records map[string][]dns.RR
	// slow names are never answered so the client times out
	slow map[string]bool
}

func (z zone) ServeDNS(w dns.ResponseWriter, req *dns.Msg) {
	q := req.Question[0]
	if z.slow[q.Name] {
		return
	}

	m := new(dns.Msg)
	m.SetReply(req)
	rrs, ok := z.records[q.Name]
	if !ok {
		m.SetRcode(req, dns.RcodeNameError)
		_ = w.WriteMsg(m)

		return
	}
	for _, rr := range rrs {
		if rr.Header().Rrtype == q.Qtype {
			m.Answer = append(m.Answer, rr)
		}
	}
	_ = w.WriteMsg(m)
}

func rr(t *testing.T, s string) dns.RR {
	t.Helper()
	r, err := dns.NewRR(s)
	require.NoError(t, err)

	return r
}

func startServer(t *testing.T, z zone) string {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	started := sync.WaitGroup{}
	started.Add(1)
	srv := &dns.Server{PacketConn: pc, Handler: z, NotifyStartedFunc: started.Done}
	go func() { _ = srv.ActivateAndServe() }()
	started.Wait()
	t.Cleanup(func() { _ = srv.Shutdown() })

	return pc.LocalAddr().String()
}

func testZone(t *testing.T) zone {
	t.Helper()

	return zone{
		records: map[string][]dns.RR{
			"secure.test.": {
				rr(t, `secure.test. 60 IN MX 10 mx1.secure.test.`),
				rr(t, `secure.test. 60 IN MX 20 mx2.secure.test.`),
				rr(t, `secure.test. 60 IN TXT "google-site-verification=abc"`),
				rr(t, `secure.test. 60 IN TXT "v=spf1 include:_spf.secure.test " "-all"`),
			},
			"_dmarc.secure.test.": {
				rr(t, `_dmarc.secure.test. 60 IN TXT "v=DMARC1; p=reject; rua=mailto:agg@secure.test; ruf=mailto:f@secure.test"`),
			},
			"open.test.": {
				rr(t, `open.test. 60 IN MX 10 mail.open.test.`),
				rr(t, `open.test. 60 IN TXT "v=spf1 +all"`),
			},
			"_dmarc.open.test.": {
				rr(t, `_dmarc.open.test. 60 IN TXT "v=DMARC1; p=reject"`),
			},
			"monitor.test.": {
				rr(t, `monitor.test. 60 IN MX 10 mail.monitor.test.`),
				rr(t, `monitor.test. 60 IN TXT "v=spf1 mx -all"`),
			},
			"_dmarc.monitor.test.": {
				rr(t, `_dmarc.monitor.test. 60 IN TXT "v=DMARC1; p=none"`),
			},
			"nullmx.test.": {
				rr(t, `nullmx.test. 60 IN MX 0 .`),
			},
			"nomail.test.": {},
		},
		slow: map[string]bool{"slow.test.": true, "_dmarc.slow.test.": true},
	}
}

func newProbe(t *testing.T) (*dnsprobe.Probe, *dnsprobe.Resolver) {
	t.Helper()
	addr := startServer(t, testZone(t))
	r, err := dnsprobe.NewResolver(dnsprobe.ResolverOptions{Servers: []string{addr}, Timeout: 300 * time.Millisecond})
	require.NoError(t, err)

	return dnsprobe.New(r), r
}

func TestProbe_Resolve_StrictDomain(t *testing.T) {
	p, _ := newProbe(t)

	res := p.Resolve(context.Background(), "secure.test")
	require.Equal(t, "mx1.secure.test", res.MX)
	require.Equal(t, "v=spf1 include:_spf.secure.test -all", res.SPF)
	require.Equal(t, "v=DMARC1; p=reject; rua=mailto:agg@secure.test; ruf=mailto:f@secure.test", res.DMARC)
	require.False(t, res.Spoofable)
	require.NoError(t, res.MXErr)
	require.NoError(t, res.SPFErr)
	require.NoError(t, res.DMARCErr)
}

func TestProbe_Resolve_AllowAllSPFIsSpoofable(t *testing.T) {
	p, _ := newProbe(t)

	res := p.Resolve(context.Background(), "open.test")
	require.Equal(t, "v=spf1 +all", res.SPF)
	require.NotEmpty(t, res.DMARC)
	require.True(t, res.Spoofable)
}

func TestProbe_Resolve_MonitorOnlyDMARCIsSpoofable(t *testing.T) {
	p, _ := newProbe(t)

	res := p.Resolve(context.Background(), "monitor.test")
	require.True(t, res.Spoofable)
}

func TestProbe_Resolve_MissingRecordsDegrade(t *testing.T) {
	p, _ := newProbe(t)

	res := p.Resolve(context.Background(), "unknown.test")
	require.Empty(t, res.MX)
	require.Empty(t, res.SPF)
	require.Empty(t, res.DMARC)
	require.True(t, res.Spoofable)
	require.ErrorIs(t, res.MXErr, serrors.ErrNotFound)
	require.ErrorIs(t, res.SPFErr, serrors.ErrNotFound)
	require.ErrorIs(t, res.DMARCErr, serrors.ErrNotFound)
}

func TestProbe_Resolve_NullMX(t *testing.T) {
	p, _ := newProbe(t)

	res := p.Resolve(context.Background(), "nullmx.test")
	require.Empty(t, res.MX)
	require.ErrorIs(t, res.MXErr, serrors.ErrNotFound)
}

func TestProbe_Resolve_TimeoutIsDistinctFromMissing(t *testing.T) {
	p, _ := newProbe(t)

	res := p.Resolve(context.Background(), "slow.test")
	require.Empty(t, res.MX)
	require.True(t, res.Spoofable)
	require.ErrorIs(t, res.MXErr, serrors.ErrTimeout)
	require.NotErrorIs(t, res.MXErr, serrors.ErrNotFound)
	require.ErrorIs(t, res.DMARCErr, serrors.ErrTimeout)
}

func TestResolver_EmptyAnswerIsNotFound(t *testing.T) {
	_, r := newProbe(t)

	_, err := r.MX(context.Background(), "nomail.test")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolver_A(t *testing.T) {
	addr := startServer(t, zone{records: map[string][]dns.RR{
		"host.test.": {rr(t, `host.test. 60 IN A 127.0.0.2`)},
	}})
	r, err := dnsprobe.NewResolver(dnsprobe.ResolverOptions{Servers: []string{addr}, Timeout: time.Second})
	require.NoError(t, err)

	ips, err := r.A(context.Background(), "host.test")
	require.NoError(t, err)
	require.Len(t, ips, 1)
	require.Equal(t, "127.0.0.2", ips[0].String())
}

func TestSpoofable(t *testing.T) {
	cases := []struct {
		name  string
		spf   string
		dmarc string
		want  bool
	}{
		{name: "strict", spf: "v=spf1 -all", dmarc: "v=DMARC1; p=reject", want: false},
		{name: "quarantine", spf: "v=spf1 ~all", dmarc: "v=DMARC1; p=quarantine", want: false},
		{name: "no spf", spf: "", dmarc: "v=DMARC1; p=reject", want: true},
		{name: "no dmarc", spf: "v=spf1 -all", dmarc: "", want: true},
		{name: "plus all", spf: "v=spf1 a mx +all", dmarc: "v=DMARC1; p=reject", want: true},
		{name: "unqualified all", spf: "v=spf1 all", dmarc: "v=DMARC1; p=reject", want: true},
		{name: "monitor only", spf: "v=spf1 -all", dmarc: "v=DMARC1; p=none", want: true},
		{name: "subdomain policy none", spf: "v=spf1 -all", dmarc: "v=DMARC1; p=reject; sp=none", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, dnsprobe.Spoofable(tc.spf, tc.dmarc))
		})
	}
}

func TestParseDMARC(t *testing.T) {
	d := dnsprobe.ParseDMARC("v=DMARC1; p=Quarantine; rua=mailto:a@example.org; ruf=mailto:f@example.org; pct=50")
	require.Equal(t, "quarantine", d.Policy)
	require.Equal(t, "mailto:a@example.org", d.AggregateReports)
	require.Equal(t, "mailto:f@example.org", d.ForensicReports)
	require.True(t, d.Strong())

	d = dnsprobe.ParseDMARC("v=DMARC1; sp=reject")
	require.Empty(t, d.Policy)
	require.False(t, d.Strong())
}
