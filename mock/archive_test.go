package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *pydocs.Archive
		s := &mock.ArchiveStore{
			SaveFn: func(_ context.Context, a *pydocs.Archive) error {
				calledWith = a
				a.Path = "downloads/" + a.Name
				return nil
			},
		}

		a := &pydocs.Archive{URL: "https://example.com/docs.zip", Name: "docs.zip"}
		err := s.Save(context.Background(), a)

		require.NoError(t, err)
		assert.Same(t, a, calledWith)
		assert.Equal(t, "downloads/docs.zip", a.Path)
	})
}
