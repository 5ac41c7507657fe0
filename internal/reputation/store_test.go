package reputation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"emailrep/internal/reputation"
	"emailrep/pkg/domain"
	mockstorage "emailrep/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVerdictStore_WithoutStorage(t *testing.T) {
	s := reputation.NewVerdictStore(nil)

	require.Nil(t, s.History(context.Background(), "jane@example.org"))
	require.False(t, s.Persist(context.Background(), domain.DomainSignal{}, domain.EmailSignal{}))
}

func TestVerdictStore_History(t *testing.T) {
	f := newFixture(t)
	s := reputation.NewVerdictStore(f.storage)
	h := &domain.History{FirstSeen: time.Now().UTC()}

	f.storage.EXPECT().EmailHistory(gomock.Any(), "jane@example.org").Return(h, nil)
	require.Same(t, h, s.History(context.Background(), "jane@example.org"))

	f.storage.EXPECT().EmailHistory(gomock.Any(), "jane@example.org").Return(nil, errors.New("timeout"))
	require.Nil(t, s.History(context.Background(), "jane@example.org"))
}

func TestVerdictStore_Persist(t *testing.T) {
	f := newFixture(t)
	s := reputation.NewVerdictStore(f.storage)
	d := domain.DomainSignal{Name: "example.org"}
	e := domain.EmailSignal{Address: "jane@example.org"}

	expectWithTx(f, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertDomain(gomock.Any(), d).Return(nil)
		tx.EXPECT().UpsertEmail(gomock.Any(), e).Return(nil)
	})
	require.True(t, s.Persist(context.Background(), d, e))

	expectWithTx(f, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertDomain(gomock.Any(), d).Return(nil)
		tx.EXPECT().UpsertEmail(gomock.Any(), e).Return(errors.New("constraint violation"))
	})
	require.False(t, s.Persist(context.Background(), d, e))
}
