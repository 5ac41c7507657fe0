package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"emailrep/pkg/storage/postgres"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type recheckArgs struct {
	Address string `json:"address" river:"unique"`
}

func (recheckArgs) Kind() string { return "recheck_address" }

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)
}

func TestPgSQL_AddJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	migrateRiver(t, pg)
	ctx := context.Background()

	t.Run("inside a transaction", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		inserted, err := tx.AddJob(ctx, recheckArgs{Address: "tx@example.org"}, nil)
		require.NoError(t, err)
		require.True(t, inserted)
		rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
			ctx,
			t,
			tx.(*postgres.PgSQL).DB.(*sql.Tx),
			&recheckArgs{},
			nil,
		)
	})

	t.Run("outside a transaction", func(t *testing.T) {
		inserted, err := pg.AddJob(ctx, recheckArgs{Address: "jane@example.org"}, nil)
		require.NoError(t, err)
		require.True(t, inserted)
		rivertest.RequireInserted[*riverdatabasesql.Driver](
			ctx,
			t,
			riverdatabasesql.New(pg.DB.(*sql.DB)),
			&recheckArgs{},
			nil,
		)
	})

	t.Run("unique args are inserted once", func(t *testing.T) {
		opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}
		inserted, err := pg.AddJob(ctx, recheckArgs{Address: "dup@example.org"}, opts)
		require.NoError(t, err)
		require.True(t, inserted)

		inserted, err = pg.AddJob(ctx, recheckArgs{Address: "dup@example.org"}, opts)
		require.NoError(t, err)
		require.False(t, inserted)
	})
}
