package postgres

import (
	"context"
	"fmt"

	"emailrep/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

// excluded maps every column to its EXCLUDED value so that a conflicting
// insert replaces the whole row.
func excluded(columns ...string) goqu.Record {
	rec := make(goqu.Record, len(columns))
	for _, c := range columns {
		rec[c] = goqu.L("EXCLUDED." + c)
	}

	return rec
}

var (
	domainColumns = []string{ //nolint: gochecknoglobals
		"tld", "primary_mx", "spf_record", "dmarc_record", "days_since_creation",
		"new_domain", "disposable", "spam", "phishing", "suspicious_tld", "catch_all",
	}
	emailColumns = []string{ //nolint: gochecknoglobals
		"reputation_score", "reputation_text", "valid", "deliverable", "spoofable",
	}
)

func (p *PgSQL) UpsertDomain(ctx context.Context, d domain.DomainSignal) error {
	var row PgDomain
	row.FromDomain(d)

	_, err := p.Builder.Insert(domainsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("domain_name", excluded(domainColumns...))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert domain into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) UpsertEmail(ctx context.Context, e domain.EmailSignal) error {
	var row PgEmail
	row.FromDomain(e)

	_, err := p.Builder.Insert(emailsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("email_address", excluded(emailColumns...))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert email into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) EmailHistory(ctx context.Context, address string) (*domain.History, error) {
	var row pgHistory
	found, err := p.Builder.From(emailsTable).
		Where(goqu.I("email_address").Eq(address)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get email history from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &domain.History{FirstSeen: row.FirstSeen.UTC(), LastUpdated: row.LastUpdated.UTC()}, nil
}

func (p *PgSQL) DomainByName(ctx context.Context, name string) (*domain.DomainSignal, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("domain_name").Eq(name)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get domain from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) EmailByAddress(ctx context.Context, address string) (*domain.EmailSignal, error) {
	var row PgEmail
	found, err := p.Builder.From(emailsTable).
		Where(goqu.I("email_address").Eq(address)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get email from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
