package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena_AllocFree(t *testing.T) {
	require := require.New(t)
	a := New[string, uint32](2)

	x, y := a.Alloc("x"), a.Alloc("y")
	require.NotZero(x)
	require.NotEqual(x, y)
	require.Equal(2, a.Len())
	require.Equal("x", *a.At(x))

	require.Equal("x", a.Free(x))
	require.Equal(1, a.Len())
	require.Empty(*a.At(x))

	z := a.Alloc("z")
	require.Equal(x, z, "freed handle should be reused first")
	require.Equal("z", *a.At(z))
	require.Equal("y", *a.At(y))
}

func TestArena_Reset(t *testing.T) {
	require := require.New(t)
	a := New[*int, uint16](0)
	v := 7
	h := a.Alloc(&v)
	a.Reset()
	require.Zero(a.Len())
	require.Len(a.slots, 1)
	require.Nil(a.slots[:2][h].v, "reset should zero freed slots")
	require.Equal(h, a.Alloc(nil), "reset should restart handles from 1")
}

func TestArena_Overflow(t *testing.T) {
	a := New[int, uint8](0)
	for i := 1; i < 256; i++ {
		a.Alloc(i)
	}
	require.Panics(t, func() { a.Alloc(256) })
}

func TestArena_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	a := New[int, uint32](0)
	content := make(map[uint32]int)
	for i := 0; i < 10000; i++ {
		if len(content) > 0 && rg.Intn(3) == 0 {
			for h, v := range content {
				if got := a.Free(h); got != v {
					t.Errorf("freed %d, want %d", got, v)
				}
				delete(content, h)
				break
			}
		} else {
			h := a.Alloc(i)
			if _, in := content[h]; in {
				t.Fatalf("handle %d handed out twice", h)
			}
			content[h] = i
		}
	}
	if a.Len() != len(content) {
		t.Errorf("arena has %d live values, want %d", a.Len(), len(content))
	}
	for h, v := range content {
		if *a.At(h) != v {
			t.Errorf("handle %d holds %d, want %d", h, *a.At(h), v)
		}
	}
}
