package pager

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMore_Sequential(t *testing.T) {
	t.Parallel()

	pages := map[string]struct {
		items []int
		next  string
	}{
		"":   {items: []int{1, 2}, next: "p2"},
		"p2": {items: []int{3}, next: ""},
	}

	var calls int
	p := New(func(_ context.Context, token string) ([]int, string, error) {
		calls++
		pg := pages[token]
		return pg.items, pg.next, nil
	})

	items, loaded, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	require.True(t, loaded)
	require.Equal(t, []int{1, 2}, items)
	require.False(t, p.Exhausted())

	items, loaded, err = p.LoadMore(context.Background())
	require.NoError(t, err)
	require.True(t, loaded)
	require.Equal(t, []int{3}, items)
	require.True(t, p.Exhausted())

	// Дальше — no-op без обращения к fetch.
	items, loaded, err = p.LoadMore(context.Background())
	require.NoError(t, err)
	require.False(t, loaded)
	require.Nil(t, items)
	require.Equal(t, 2, calls)
}

// Конкурентные триггеры «подгрузить ещё» дают ровно одну выборку.
func TestLoadMore_ConcurrentTriggersSingleFetch(t *testing.T) {
	t.Parallel()

	var calls int64
	started := make(chan struct{})
	release := make(chan struct{})

	p := New(func(_ context.Context, _ string) ([]int, string, error) {
		if atomic.AddInt64(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return []int{1}, "p2", nil
	})

	const workers = 16

	var wg sync.WaitGroup
	var loadedCount int64

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, loaded, err := p.LoadMore(context.Background())
			require.NoError(t, err)
			if loaded {
				atomic.AddInt64(&loadedCount, 1)
			}
		}()
	}

	// Дождёмся старта единственной выборки и отпустим её: к этому моменту
	// остальные горутины либо уже вернулись no-op, либо вернутся без fetch.
	<-started
	close(release)
	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt64(&calls))
	require.EqualValues(t, 1, atomic.LoadInt64(&loadedCount))
}

// Ошибка не двигает курсор: повтор запрашивает ту же страницу.
func TestLoadMore_ErrorKeepsCursor(t *testing.T) {
	t.Parallel()

	var tokens []string
	fail := true
	p := New(func(_ context.Context, token string) ([]int, string, error) {
		tokens = append(tokens, token)
		if fail {
			fail = false
			return nil, "", errors.New("db down")
		}
		return []int{1}, "", nil
	})

	_, loaded, err := p.LoadMore(context.Background())
	require.True(t, loaded)
	require.Error(t, err)

	_, loaded, err = p.LoadMore(context.Background())
	require.True(t, loaded)
	require.NoError(t, err)

	require.Equal(t, []string{"", ""}, tokens)
}

func TestReset_StartsOver(t *testing.T) {
	t.Parallel()

	var tokens []string
	p := New(func(_ context.Context, token string) ([]int, string, error) {
		tokens = append(tokens, token)
		return []int{1}, "", nil // единственная страница
	})

	_, _, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	require.True(t, p.Exhausted())

	p.Reset()
	require.False(t, p.Exhausted())

	_, loaded, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	require.True(t, loaded)
	require.Equal(t, []string{"", ""}, tokens)
}

// Reset во время активной загрузки отбрасывает её результат:
// курсор не двигается, пейджер не помечается исчерпанным.
func TestReset_DiscardsInFlightResult(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})

	p := New(func(_ context.Context, _ string) ([]int, string, error) {
		close(started)
		<-release
		return []int{1}, "", nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		items, loaded, err := p.LoadMore(context.Background())
		require.NoError(t, err)
		require.True(t, loaded)
		require.Nil(t, items) // результат отброшен
	}()

	<-started
	p.Reset()
	close(release)
	<-done

	require.False(t, p.Exhausted())
}
