package predictions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoCreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	p := StoredPrediction{ID: "p1", ParseID: "parse_a", TargetRole: "QA Engineer", CreatedAt: fixedNow}

	require.NoError(t, repo.Create(ctx, p))
	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoListNewestFirstWithFilter(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		parse := "parse_a"
		if i%2 == 1 {
			parse = "parse_b"
		}
		require.NoError(t, repo.Create(ctx, StoredPrediction{
			ID:        fmt.Sprintf("p%d", i),
			ParseID:   parse,
			CreatedAt: fixedNow.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "p4", all[0].ID)
	assert.Equal(t, "p0", all[4].ID)

	onlyA, err := repo.List(ctx, ListFilter{ParseID: "parse_a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p4", "p2", "p0"}, ids(onlyA))

	page, err := repo.List(ctx, ListFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"p3", "p2"}, ids(page))

	past, err := repo.List(ctx, ListFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestMemoryRepoEqualTimestampsKeepInsertionOrder(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, StoredPrediction{ID: "first", CreatedAt: fixedNow}))
	require.NoError(t, repo.Create(ctx, StoredPrediction{ID: "second", CreatedAt: fixedNow}))

	got, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, ids(got))
}

func ids(items []StoredPrediction) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}
