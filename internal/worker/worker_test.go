package worker_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"emailrep/internal/reputation"
	mockreputation "emailrep/internal/reputation/mock"
	"emailrep/internal/worker"
	"emailrep/pkg/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/mock/gomock"
)

func setupRiverDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx,
		fmt.Sprintf("postgres://postgres:postgres@%s:%d/testdb?sslmode=disable", host, port.Int()))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	require.NoError(t, err)

	return pool
}

func TestStart_WorksQueuedJobs(t *testing.T) {
	pool := setupRiverDB(t)
	ctrl := gomock.NewController(t)
	evaluator := mockreputation.NewMockEvaluator(ctrl)

	done := make(chan string, 1)
	evaluator.EXPECT().Evaluate(gomock.Any(), "jane@example.org").
		DoAndReturn(func(_ context.Context, address string) (*domain.Verdict, error) {
			done <- address

			return &domain.Verdict{}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client, err := worker.Start(ctx, pool, evaluator, worker.Options{MaxWorkers: 2, EvaluationTimeout: time.Minute})
	require.NoError(t, err)
	defer func() { _ = client.Stop(context.Background()) }()

	_, err = client.Insert(ctx, reputation.JobArgs{Address: "jane@example.org"}, nil)
	require.NoError(t, err)

	select {
	case got := <-done:
		require.Equal(t, "jane@example.org", got)
	case <-time.After(30 * time.Second):
		t.Fatal("job was not worked")
	}
}
