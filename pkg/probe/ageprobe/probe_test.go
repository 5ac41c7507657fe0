package ageprobe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"emailrep/pkg/domain"
	"emailrep/pkg/probe/ageprobe"
	"emailrep/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	}
}

type fixedSource struct {
	created time.Time
	err     error
	calls   int
}

func (f *fixedSource) Name() string { return "fixed" }

func (f *fixedSource) CreatedAt(context.Context, string) (time.Time, error) {
	f.calls++

	return f.created, f.err
}

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func TestDaysSince(t *testing.T) {
	require.Equal(t, 10, ageprobe.DaysSince(now.Add(-10*24*time.Hour), now))
	require.Equal(t, 9, ageprobe.DaysSince(now.Add(-10*24*time.Hour+time.Minute), now))
	require.Equal(t, 0, ageprobe.DaysSince(now.Add(-23*time.Hour), now))
	require.Equal(t, 0, ageprobe.DaysSince(now.Add(48*time.Hour), now))
}

func TestProbe_FirstSourceWins(t *testing.T) {
	first := &fixedSource{created: now.Add(-400 * 24 * time.Hour)}
	second := &fixedSource{created: now}

	days, err := ageprobe.New(first, second).WithClock(clock).AgeDays(context.Background(), "example.org")
	require.NoError(t, err)
	require.Equal(t, 400, days)
	require.Zero(t, second.calls)
}

func TestProbe_FallsBackToNextSource(t *testing.T) {
	first := &fixedSource{err: serrors.With(serrors.ErrNotFound, "no date")}
	second := &fixedSource{created: now.Add(-5 * 24 * time.Hour)}

	days, err := ageprobe.New(first, second).WithClock(clock).AgeDays(context.Background(), "example.org")
	require.NoError(t, err)
	require.Equal(t, 5, days)
	require.Equal(t, 1, first.calls)
}

func TestProbe_NoDateIsUnknown(t *testing.T) {
	first := &fixedSource{err: serrors.With(serrors.ErrNotFound, "no date")}
	second := &fixedSource{err: serrors.With(serrors.ErrUnavailable, "down")}

	days, err := ageprobe.New(first, second).WithClock(clock).AgeDays(context.Background(), "example.org")
	require.Equal(t, domain.UnknownAge, days)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestProbe_NoSources(t *testing.T) {
	days, err := ageprobe.New().AgeDays(context.Background(), "example.org")
	require.Equal(t, domain.UnknownAge, days)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestParseDate(t *testing.T) {
	cases := map[string]time.Time{
		"2019-05-04T10:11:12Z":      time.Date(2019, 5, 4, 10, 11, 12, 0, time.UTC),
		"2019-05-04T10:11:12+02:00": time.Date(2019, 5, 4, 8, 11, 12, 0, time.UTC),
		"2019-05-04":                time.Date(2019, 5, 4, 0, 0, 0, 0, time.UTC),
		"04-May-2019":               time.Date(2019, 5, 4, 0, 0, 0, 0, time.UTC),
		"2019.05.04":                time.Date(2019, 5, 4, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ageprobe.ParseDate(in)
		require.NoError(t, err, in)
		require.True(t, want.Equal(got), in)
	}

	_, err := ageprobe.ParseDate("last tuesday")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRDAPSource_Registration(t *testing.T) {
	var gotURL string
	client := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()

		return respond(http.StatusOK, `{"events":[
			{"eventAction":"last changed","eventDate":"2023-01-01T00:00:00Z"},
			{"eventAction":"registration","eventDate":"1997-09-15T04:00:00Z"},
			{"eventAction":"expiration","eventDate":"2028-09-14T04:00:00Z"}
		]}`)(r)
	})}

	created, err := ageprobe.NewRDAPSource(client, "https://rdap.test/domain").CreatedAt(context.Background(), "example.org")
	require.NoError(t, err)
	require.Equal(t, "https://rdap.test/domain/example.org", gotURL)
	require.True(t, time.Date(1997, 9, 15, 4, 0, 0, 0, time.UTC).Equal(created))
}

func TestRDAPSource_NoRegistrationEvent(t *testing.T) {
	client := &http.Client{Transport: respond(http.StatusOK, `{"events":[{"eventAction":"expiration","eventDate":"2028-09-14T04:00:00Z"}]}`)}

	_, err := ageprobe.NewRDAPSource(client, "").CreatedAt(context.Background(), "example.org")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRDAPSource_StatusCodes(t *testing.T) {
	cases := map[int]error{
		http.StatusNotFound:            serrors.ErrNotFound,
		http.StatusTooManyRequests:     serrors.ErrRateLimited,
		http.StatusInternalServerError: serrors.ErrUnavailable,
	}
	for status, want := range cases {
		client := &http.Client{Transport: respond(status, "nope")}
		_, err := ageprobe.NewRDAPSource(client, "").CreatedAt(context.Background(), "example.org")
		require.ErrorIs(t, err, want, status)
	}
}

func TestRDAPSource_TransportError(t *testing.T) {
	client := &http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	})}

	_, err := ageprobe.NewRDAPSource(client, "").CreatedAt(context.Background(), "example.org")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestRDAPSource_BadJSON(t *testing.T) {
	client := &http.Client{Transport: respond(http.StatusOK, "{")}

	_, err := ageprobe.NewRDAPSource(client, "").CreatedAt(context.Background(), "example.org")
	require.Error(t, err)
}

func TestWhoisSource_QueryError(t *testing.T) {
	src := ageprobe.NewWhoisSourceWithQuery(func(string) (string, error) {
		return "", errors.New("whois: connect timeout")
	})

	_, err := src.CreatedAt(context.Background(), "example.org")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestWhoisSource_ContextEnds(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	src := ageprobe.NewWhoisSourceWithQuery(func(string) (string, error) {
		<-block

		return "", nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := src.CreatedAt(ctx, "example.org")
	require.ErrorIs(t, err, serrors.ErrTimeout)
}
