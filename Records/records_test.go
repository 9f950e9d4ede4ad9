package Records

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSequence(t *testing.T) {
	require := require.New(t)
	var s Sequence
	require.Zero(s.Last())
	require.Equal(uint64(1), s.Next())
	require.Equal(uint64(2), s.Next())
	r := s.Stamp(Record{Name: "a"})
	require.Equal(uint64(3), r.ID)
	require.Equal("a", r.Name)
	require.Equal(uint64(3), s.Last())
}

func TestSequence_Shared(t *testing.T) {
	var s Sequence
	var wg sync.WaitGroup
	const n, m = 8, 1000
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range m {
				s.Next()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, uint64(n*m), s.Last())
}

func TestApply(t *testing.T) {
	require := require.New(t)

	o, err := Apply()
	require.NoError(err)
	require.Equal(DefaultCapacity, o.Capacity)
	require.NotNil(o.Logger)

	l := zap.NewExample()
	o, err = Apply(WithCapacity(9), WithLogger(l), WithLogger(nil))
	require.NoError(err)
	require.Equal(9, o.Capacity)
	require.Same(l, o.Logger)

	_, err = Apply(WithCapacity(0))
	var ce *CapacityError
	require.ErrorAs(err, &ce)
	require.Equal(0, ce.Cap)
	require.Panics(func() { MustApply(WithCapacity(-1)) })
}

func TestParseConfig(t *testing.T) {
	require := require.New(t)

	c, err := ParseConfig(nil)
	require.NoError(err)
	require.Equal(DefaultConfig(), c)

	c, err = ParseConfig([]byte("queue_capacity: 3\n"))
	require.NoError(err)
	require.Equal(Config{QueueCapacity: 3, ListCapacity: DefaultCapacity}, c)

	o := MustApply(c.QueueOptions()...)
	require.Equal(3, o.Capacity)
	o = MustApply(c.ListOptions(WithCapacity(7))...)
	require.Equal(7, o.Capacity)

	_, err = ParseConfig([]byte("list_capacity: 0\n"))
	var ce *CapacityError
	require.True(errors.As(err, &ce))

	_, err = ParseConfig([]byte("unknown: 1\n"))
	require.Error(err)
	_, err = ParseConfig([]byte("queue_capacity: [\n"))
	require.Error(err)
}

func TestErrors(t *testing.T) {
	require := require.New(t)
	require.Equal("container is empty: cannot dequeue", (&EmptyError{"dequeue"}).Error())
	require.Equal("container is full: capacity 5 reached", (&FullError{5}).Error())
	require.Equal(`"x" not found`, (&NotFoundError{"x"}).Error())
	require.Contains((&CapacityError{0}).Error(), "invalid capacity 0")
}
