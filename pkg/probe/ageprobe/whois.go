package ageprobe

import (
	"context"
	"errors"
	"strings"
	"time"

	"emailrep/pkg/serrors"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// WhoisQuery returns the raw WHOIS text for a domain.
type WhoisQuery func(domainName string) (string, error)

// WhoisSource reads creation dates from WHOIS.
type WhoisSource struct {
	query WhoisQuery
}

// NewWhoisSource creates a WhoisSource backed by a likexian/whois client with
// the given timeout.
func NewWhoisSource(timeout time.Duration) *WhoisSource {
	client := whois.NewClient().SetTimeout(timeout)

	return &WhoisSource{query: func(domainName string) (string, error) {
		return client.Whois(domainName)
	}}
}

// NewWhoisSourceWithQuery creates a WhoisSource with a custom query function.
func NewWhoisSourceWithQuery(query WhoisQuery) *WhoisSource {
	return &WhoisSource{query: query}
}

func (w *WhoisSource) Name() string { return "whois" }

// CreatedAt queries WHOIS and parses the creation date. The blocking WHOIS
// call is abandoned when ctx ends.
func (w *WhoisSource) CreatedAt(ctx context.Context, domainName string) (time.Time, error) {
	type result struct {
		raw string
		err error
	}
	done := make(chan result, 1)
	go func() {
		raw, err := w.query(domainName)
		done <- result{raw: raw, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return time.Time{}, serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "whois %s", domainName)
	case res = <-done:
	}
	if res.err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrUnavailable, res.err, "whois %s", domainName)
	}

	return CreatedFromWhois(res.raw)
}

// CreatedFromWhois extracts the creation date from raw WHOIS text.
func CreatedFromWhois(raw string) (time.Time, error) {
	info, err := whoisparser.Parse(raw)
	if err != nil {
		if errors.Is(err, whoisparser.ErrNotFoundDomain) {
			return time.Time{}, serrors.Wrap(serrors.ErrNotFound, err, "domain not registered")
		}

		return time.Time{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not parse whois")
	}
	if info.Domain == nil || strings.TrimSpace(info.Domain.CreatedDate) == "" {
		return time.Time{}, serrors.With(serrors.ErrNotFound, "whois has no creation date")
	}

	// some registries list several creation dates; the first one counts
	first := strings.TrimSpace(strings.Split(info.Domain.CreatedDate, ",")[0])

	return ParseDate(first)
}
