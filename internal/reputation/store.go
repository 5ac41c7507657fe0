package reputation

import (
	"context"

	"emailrep/pkg/domain"
	"emailrep/pkg/logger"
	"emailrep/pkg/storage"

	"go.uber.org/zap"
)

// VerdictStore is the error boundary around verdict persistence: failures are
// logged and never reach the evaluation. A store without storage remembers
// nothing.
type VerdictStore struct {
	storage storage.Storage
}

// NewVerdictStore wraps s, which may be nil.
func NewVerdictStore(s storage.Storage) *VerdictStore {
	return &VerdictStore{storage: s}
}

// History returns the audit timestamps stored for address, or nil when the
// address is unseen or the lookup failed.
func (s *VerdictStore) History(ctx context.Context, address string) *domain.History {
	if s.storage == nil {
		return nil
	}
	h, err := s.storage.EmailHistory(ctx, address)
	if err != nil {
		logger.Error(ctx, "could not read email history", zap.Error(err))

		return nil
	}

	return h
}

// Persist upserts the domain and the address in one transaction and reports
// whether it committed.
func (s *VerdictStore) Persist(ctx context.Context, d domain.DomainSignal, e domain.EmailSignal) bool {
	if s.storage == nil {
		return false
	}
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.UpsertDomain(ctx, d); err != nil {
			return err
		}

		return tx.UpsertEmail(ctx, e)
	}); err != nil {
		logger.Error(ctx, "could not persist verdict", zap.Error(err))

		return false
	}

	return true
}
