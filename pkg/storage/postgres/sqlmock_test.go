package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"emailrep/pkg/domain"
	"emailrep/pkg/storage"
	"emailrep/pkg/storage/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*postgres.PgSQL, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.Wrap(db), mock
}

func TestPgSQL_UpsertDomain_SQL(t *testing.T) {
	pg, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "domains"`) +
		`.*` + regexp.QuoteMeta(`ON CONFLICT (domain_name) DO UPDATE SET`) +
		`.*"spf_record"=EXCLUDED\.spf_record.*"tld"=EXCLUDED\.tld`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, pg.UpsertDomain(context.Background(), exampleDomain()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_UpsertEmail_SQL(t *testing.T) {
	pg, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "emails"`) +
		`.*` + regexp.QuoteMeta(`ON CONFLICT (email_address) DO UPDATE SET`) +
		`.*"reputation_score"=EXCLUDED\.reputation_score`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, pg.UpsertEmail(context.Background(), exampleEmail()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_UpsertEmail_Error(t *testing.T) {
	pg, mock := newMock(t)

	mock.ExpectExec(`INSERT INTO "emails"`).WillReturnError(errors.New("connection reset"))

	err := pg.UpsertEmail(context.Background(), exampleEmail())
	require.ErrorContains(t, err, "could not upsert email")
}

func TestPgSQL_EmailHistory_SQL(t *testing.T) {
	pg, mock := newMock(t)
	first := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	last := first.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "first_seen", "last_updated" FROM "emails" WHERE ("email_address" = 'jane@example.org')`)).
		WillReturnRows(sqlmock.NewRows([]string{"first_seen", "last_updated"}).AddRow(first, last))

	h, err := pg.EmailHistory(context.Background(), "jane@example.org")
	require.NoError(t, err)
	require.Equal(t, &domain.History{FirstSeen: first, LastUpdated: last}, h)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_WithTx_RollsBackOnError(t *testing.T) {
	pg, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "domains"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "emails"`).WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := pg.WithTx(context.Background(), func(s storage.AllStorage) error {
		if err := s.UpsertDomain(context.Background(), exampleDomain()); err != nil {
			return err
		}

		return s.UpsertEmail(context.Background(), exampleEmail())
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_WithTx_Commits(t *testing.T) {
	pg, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "domains"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "emails"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := pg.WithTx(context.Background(), func(s storage.AllStorage) error {
		if err := s.UpsertDomain(context.Background(), exampleDomain()); err != nil {
			return err
		}

		return s.UpsertEmail(context.Background(), exampleEmail())
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
