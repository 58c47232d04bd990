package mock

import (
	"context"

	"github.com/fwojciec/pydocs"
)

var _ pydocs.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore is a mock implementation of pydocs.ArchiveStore.
type ArchiveStore struct {
	SaveFn func(ctx context.Context, a *pydocs.Archive) error
}

func (s *ArchiveStore) Save(ctx context.Context, a *pydocs.Archive) error {
	return s.SaveFn(ctx, a)
}
