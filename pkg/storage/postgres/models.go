package postgres

import (
	"database/sql"
	"time"

	"emailrep/pkg/domain"
)

const (
	domainsTable = "domains"
	emailsTable  = "emails"
)

// PgDomain is a row of the domains table.
type PgDomain struct {
	Name          string         `db:"domain_name"`
	TLD           string         `db:"tld"`
	PrimaryMX     sql.NullString `db:"primary_mx"`
	SPFRecord     sql.NullString `db:"spf_record"`
	DMARCRecord   sql.NullString `db:"dmarc_record"`
	AgeDays       int            `db:"days_since_creation"`
	NewDomain     bool           `db:"new_domain"`
	Disposable    bool           `db:"disposable"`
	Spam          bool           `db:"spam"`
	Phishing      bool           `db:"phishing"`
	SuspiciousTLD bool           `db:"suspicious_tld"`
	CatchAll      bool           `db:"catch_all"`

	FirstSeen   time.Time `db:"first_seen"   goqu:"skipinsert,skipupdate"`
	LastUpdated time.Time `db:"last_updated" goqu:"skipinsert,skipupdate"`
}

// PgEmail is a row of the emails table.
type PgEmail struct {
	Address     string `db:"email_address"`
	Score       int    `db:"reputation_score"`
	Label       string `db:"reputation_text"`
	Valid       bool   `db:"valid"`
	Deliverable bool   `db:"deliverable"`
	Spoofable   bool   `db:"spoofable"`

	FirstSeen   time.Time `db:"first_seen"   goqu:"skipinsert,skipupdate"`
	LastUpdated time.Time `db:"last_updated" goqu:"skipinsert,skipupdate"`
}

// pgHistory selects only the audit columns.
type pgHistory struct {
	FirstSeen   time.Time `db:"first_seen"`
	LastUpdated time.Time `db:"last_updated"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (p *PgDomain) FromDomain(d domain.DomainSignal) {
	*p = PgDomain{
		Name:          d.Name,
		TLD:           d.TLD,
		PrimaryMX:     nullString(d.PrimaryMX),
		SPFRecord:     nullString(d.SPFRecord),
		DMARCRecord:   nullString(d.DMARCRecord),
		AgeDays:       d.AgeDays,
		NewDomain:     d.IsNew,
		Disposable:    d.IsDisposable,
		Spam:          d.IsSpam,
		Phishing:      d.IsPhishing,
		SuspiciousTLD: d.IsSuspicious,
		CatchAll:      d.IsCatchAll,
	}
}

func (p *PgDomain) ToDomain() *domain.DomainSignal {
	return &domain.DomainSignal{
		Name:         p.Name,
		TLD:          p.TLD,
		PrimaryMX:    p.PrimaryMX.String,
		SPFRecord:    p.SPFRecord.String,
		DMARCRecord:  p.DMARCRecord.String,
		AgeDays:      p.AgeDays,
		IsNew:        p.NewDomain,
		IsDisposable: p.Disposable,
		IsSpam:       p.Spam,
		IsPhishing:   p.Phishing,
		IsSuspicious: p.SuspiciousTLD,
		IsCatchAll:   p.CatchAll,
		FirstSeen:    p.FirstSeen.UTC(),
		LastUpdated:  p.LastUpdated.UTC(),
	}
}

func (p *PgEmail) FromDomain(e domain.EmailSignal) {
	*p = PgEmail{
		Address:     e.Address,
		Score:       e.Score,
		Label:       string(e.Label),
		Valid:       e.Valid,
		Deliverable: e.Deliverable,
		Spoofable:   e.Spoofable,
	}
}

func (p *PgEmail) ToDomain() *domain.EmailSignal {
	return &domain.EmailSignal{
		Address:     p.Address,
		Score:       p.Score,
		Label:       domain.Label(p.Label),
		Valid:       p.Valid,
		Deliverable: p.Deliverable,
		Spoofable:   p.Spoofable,
		FirstSeen:   p.FirstSeen.UTC(),
		LastUpdated: p.LastUpdated.UTC(),
	}
}
