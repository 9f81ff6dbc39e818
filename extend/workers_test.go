package extend_test

import (
	"context"
	"testing"

	"github.com/bioarsenal/greedy/extend"
	"github.com/bioarsenal/greedy/greedy"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func repeatedSubject(query string) []byte {
	return []byte(query + "TTTT" + query)
}

func TestExtendAllFindsEachCopy(t *testing.T) {
	pool, err := extend.NewContextPool(nil, extend.PoolOptions{})
	require.NoError(t, err)
	defer pool.Destroy()

	query := "ACGTTGCAAGCTTAGC"
	subject := repeatedSubject(query)

	seeds := []extend.Seed{
		{QueryOffset: 0, SubjectOffset: 20},
		{QueryOffset: 0, SubjectOffset: 0},
		{QueryOffset: 5, SubjectOffset: 5},
		{QueryOffset: 8, SubjectOffset: 28},
	}

	hsps, err := extend.ExtendAll(context.Background(), pool, params, []byte(query), subject, seeds, 3, true)
	require.NoError(t, err)
	require.Len(t, hsps, 2)

	require.Equal(t, 0, hsps[0].SubjectStart)
	require.Equal(t, 16, hsps[0].SubjectStop)
	require.Equal(t, 20, hsps[1].SubjectStart)
	require.Equal(t, 36, hsps[1].SubjectStop)
	for _, hsp := range hsps {
		require.Equal(t, 0, hsp.QueryStart)
		require.Equal(t, 16, hsp.QueryStop)
		require.Equal(t, 32, hsp.Score)
		require.Equal(t, "16M", hsp.Script.String())
	}

	// Every worker handed its context back
	require.Equal(t, pool.Created(), pool.Idle())
	require.LessOrEqual(t, pool.Created(), 3)
}

func TestExtendAllNoSeeds(t *testing.T) {
	pool, err := extend.NewContextPool(nil, extend.PoolOptions{})
	require.NoError(t, err)
	defer pool.Destroy()

	hsps, err := extend.ExtendAll(context.Background(), pool, params, []byte("ACGT"), []byte("ACGT"), nil, 4, false)
	require.NoError(t, err)
	require.Empty(t, hsps)
}

func TestExtendAllDropsExhaustedSeeds(t *testing.T) {
	pool, err := extend.NewContextPool(nil, extend.PoolOptions{Config: greedy.Config{MaxSpace: 2}})
	require.NoError(t, err)
	defer pool.Destroy()

	hsps, err := extend.ExtendAll(context.Background(), pool, params, []byte("ACGTTACGT"), []byte("ACGTACGT"), []extend.Seed{{}}, 2, true)
	require.NoError(t, err)
	require.Empty(t, hsps)
}

func TestExtendAllCancelled(t *testing.T) {
	pool, err := extend.NewContextPool(nil, extend.PoolOptions{})
	require.NoError(t, err)
	defer pool.Destroy()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	query := "ACGTTGCAAGCTTAGC"
	_, err = extend.ExtendAll(ctx, pool, params, []byte(query), repeatedSubject(query), []extend.Seed{{}, {SubjectOffset: 20}}, 2, false)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestExtendAllDestroyedPool(t *testing.T) {
	pool, err := extend.NewContextPool(nil, extend.PoolOptions{})
	require.NoError(t, err)
	pool.Destroy()

	_, err = extend.ExtendAll(context.Background(), pool, params, []byte("ACGT"), []byte("ACGT"), []extend.Seed{{}}, 1, false)
	require.True(t, errors.Is(err, extend.ErrPoolDestroyed))
}

func TestExtendAllRejectsParams(t *testing.T) {
	pool, err := extend.NewContextPool(nil, extend.PoolOptions{})
	require.NoError(t, err)
	defer pool.Destroy()

	_, err = extend.ExtendAll(context.Background(), pool, greedy.Params{Match: 1, Mismatch: -1, GapOpen: -1}, []byte("ACGT"), []byte("ACGT"), []extend.Seed{{}}, 1, false)
	require.True(t, errors.Is(err, greedy.ErrInvalidParams))
}
