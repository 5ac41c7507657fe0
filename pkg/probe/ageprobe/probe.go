// Package ageprobe determines how many days ago a domain was registered.
//
// Registration data comes from a chain of sources (WHOIS, then RDAP). The
// first source that yields a creation date wins; when none does the age is
// domain.UnknownAge.
package ageprobe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"emailrep/pkg/domain"
	"emailrep/pkg/serrors"
)

// Source looks up the creation date of a registered domain.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// CreatedAt returns the creation date, or an error of kind ErrNotFound
	// when the registry has no such date.
	CreatedAt(ctx context.Context, domainName string) (time.Time, error)
}

// Probe computes domain ages from its sources.
type Probe struct {
	sources []Source
	now     func() time.Time
}

// New creates a Probe querying sources in order.
func New(sources ...Source) *Probe {
	return &Probe{sources: sources, now: time.Now}
}

// WithClock replaces the probe's clock.
func (p *Probe) WithClock(now func() time.Time) *Probe {
	p.now = now

	return p
}

// AgeDays returns the number of whole days since domainName was created, or
// domain.UnknownAge together with the joined source errors.
func (p *Probe) AgeDays(ctx context.Context, domainName string) (int, error) {
	if len(p.sources) == 0 {
		return domain.UnknownAge, serrors.With(serrors.ErrNotFound, "no registration sources configured")
	}

	errs := make([]error, 0, len(p.sources))
	for _, src := range p.sources {
		created, err := src.CreatedAt(ctx, domainName)
		if err == nil {
			return DaysSince(created, p.now()), nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
		if ctx.Err() != nil {
			break
		}
	}

	return domain.UnknownAge, errors.Join(errs...)
}

// DaysSince returns the whole days elapsed from created to now. A creation
// date in the future counts as zero days.
func DaysSince(created, now time.Time) int {
	d := now.Sub(created)
	if d < 0 {
		return 0
	}

	return int(d / (24 * time.Hour))
}

// dateLayouts are the creation date formats seen in registry responses.
var dateLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"02-Jan-2006",
	"02.01.2006",
	"January 2 2006",
	"Mon Jan 2 15:04:05 MST 2006",
}

// ParseDate parses a registry creation date in any of the known layouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, serrors.With(serrors.ErrNotFound, "unrecognized creation date %q", s)
}
