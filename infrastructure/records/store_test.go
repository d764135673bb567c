package records_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/records"
)

func TestStore_SnapshotsAreIndependent(t *testing.T) {
	seed := []int{1, 2, 3}
	s := records.NewStore(seed)
	seed[0] = 99

	snap := s.All()
	require.Equal(t, []int{1, 2, 3}, snap)

	s.Prepend(0)
	require.Equal(t, []int{1, 2, 3}, snap)
	require.Equal(t, []int{0, 1, 2, 3}, s.All())
}

func TestStore_BoundedPrependDropsOldest(t *testing.T) {
	s := records.NewStore([]int{3, 2, 1}, records.WithCapacity(3))

	dropped := s.Prepend(4)
	require.Equal(t, 1, dropped)
	require.Equal(t, []int{4, 3, 2}, s.All())
}

func TestStore_SeedLargerThanCapacityKeepsHead(t *testing.T) {
	s := records.NewStore([]int{5, 4, 3, 2, 1}, records.WithCapacity(2))
	require.Equal(t, []int{5, 4}, s.All())
}

func TestStore_Find(t *testing.T) {
	s := records.NewStore([]string{"a", "b", "b"})

	got, ok := s.Find(func(v string) bool { return v == "b" })
	require.True(t, ok)
	require.Equal(t, "b", got)

	_, ok = s.Find(func(v string) bool { return v == "z" })
	require.False(t, ok)
}

func TestStore_UpdateTruncates(t *testing.T) {
	s := records.NewStore([]int{1, 2}, records.WithCapacity(3))
	dropped := s.Update(func(cur []int) []int {
		next := append([]int{}, cur...)
		return append(next, 3, 4)
	})
	require.Equal(t, 1, dropped)
	require.Equal(t, []int{1, 2, 3}, s.All())
	require.Equal(t, 3, s.Len())
}

func TestStore_ConcurrentPrepend(t *testing.T) {
	s := records.NewStore[int](nil, records.WithCapacity(50))
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			s.Prepend(v)
			_ = s.All()
		}(i)
	}
	wg.Wait()
	require.Equal(t, 50, s.Len())
}
