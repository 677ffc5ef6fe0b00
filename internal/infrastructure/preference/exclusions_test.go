package preference_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/infrastructure/preference"
)

type failingStore struct {
	preference.Store
}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestExclusionRepository(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := preference.NewMemoryStore()
	repo := preference.NewExclusionRepository(store, "")

	names, err := repo.Load(ctx)
	rq.NoError(err)
	rq.Nil(names)

	rq.NoError(repo.Save(ctx, []string{"Fire Shard", "Mist"}))

	raw, err := store.Get(ctx, preference.DefaultExclusionsKey)
	rq.NoError(err)
	rq.JSONEq(`["Fire Shard","Mist"]`, string(raw))

	names, err = repo.Load(ctx)
	rq.NoError(err)
	rq.Equal([]string{"Fire Shard", "Mist"}, names)

	rq.NoError(repo.Save(ctx, nil))

	raw, err = store.Get(ctx, preference.DefaultExclusionsKey)
	rq.NoError(err)
	rq.Equal(`[]`, string(raw))

	rq.NoError(repo.Reset(ctx))

	_, err = store.Get(ctx, preference.DefaultExclusionsKey)
	rq.ErrorIs(err, preference.ErrNotFound)
}

func TestExclusionRepositoryCorrupt(t *testing.T) {
	testCases := []struct {
		name  string
		value string
	}{
		{name: "not json", value: `Fire Shard`},
		{name: "object", value: `{"names":["Mist"]}`},
		{name: "numbers", value: `[1,2]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			ctx := context.Background()

			store := preference.NewMemoryStore()
			rq.NoError(store.Set(ctx, "prefs", []byte(tc.value)))

			_, err := preference.NewExclusionRepository(store, "prefs").Load(ctx)
			rq.Error(err)
		})
	}
}

func TestExclusionRepositoryStoreFailure(t *testing.T) {
	rq := require.New(t)

	_, err := preference.NewExclusionRepository(failingStore{}, "").Load(context.Background())
	rq.ErrorContains(err, "connection refused")
}
