package dict

import (
	"cmp"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)
	d := New[int, string]()

	ok, val, err := d.TryGetValue(5)
	assert.NoError(err)
	assert.False(ok)
	assert.Equal("", val)

	assert.NoError(d.Add(5, "a"))
	ok, val, err = d.TryGetValue(5)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("a", val)
	assert.Equal(uint64(1), d.Version())
	assert.Equal(1, d.Len())
}

func TestScenarioRemoveRoot(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	d := New[int, string]()

	require.NoError(d.Add(5, "a"))
	require.NoError(d.Add(3, "b"))
	require.NoError(d.Add(8, "c"))

	found, err := d.Remove(5)
	require.NoError(err)
	assert.True(found)

	root, ok := d.Root().Node()
	require.True(ok)
	assert.Equal(8, root.Key())
	assert.True(root.Right().IsEmpty())
	left, ok := root.Left().Node()
	require.True(ok)
	assert.Equal(3, left.Key())

	ok, val, err := d.TryGetValue(5)
	assert.NoError(err)
	assert.False(ok)
	assert.Equal("", val)

	ok, val, err = d.TryGetValue(3)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("b", val)
}

func TestDuplicateRejection(t *testing.T) {
	assert := assert.New(t)
	d := New[int, string]()

	assert.NoError(d.Add(1, "x"))
	before := d.Snapshot()

	err := d.Add(1, "y")
	assert.ErrorIs(err, ErrDuplicateKey)

	ok, val, err := d.TryGetValue(1)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("x", val)

	// the failed add did not install anything
	assert.True(d.Root().Same(before.Root()))
	assert.Equal(before.Version(), d.Version())
}

func TestIdempotentRemoval(t *testing.T) {
	assert := assert.New(t)
	d := New[string, int]()

	for i, k := range []string{"m", "c", "x", "a"} {
		assert.NoError(d.Add(k, i))
	}
	before := d.Snapshot()

	found, err := d.Remove("q")
	assert.NoError(err)
	assert.False(found)
	assert.True(d.Root().Same(before.Root()))
	assert.Equal(before.Version(), d.Version())

	found, err = d.Remove("q")
	assert.NoError(err)
	assert.False(found)

	keys := []string{}
	for k := range d.Snapshot().All() {
		keys = append(keys, k)
	}
	assert.Equal([]string{"a", "c", "m", "x"}, keys)
}

func TestNullKeys(t *testing.T) {
	assert := assert.New(t)

	compare := func(a, b *string) int { return cmp.Compare(*a, *b) }
	d := NewFunc[*string, int](compare)

	assert.ErrorIs(d.Add(nil, 1), ErrNullKey)
	_, _, err := d.TryGetValue(nil)
	assert.ErrorIs(err, ErrNullKey)
	_, err = d.Remove(nil)
	assert.ErrorIs(err, ErrNullKey)
	assert.Equal(uint64(0), d.Version())
	assert.True(d.Root().IsEmpty())

	k := "key"
	assert.NoError(d.Add(&k, 1))
	other := "key"
	ok, val, err := d.TryGetValue(&other)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(1, val)

	_, _, err = d.Snapshot().TryGetValue(nil)
	assert.ErrorIs(err, ErrNullKey)

	assert.True(isNullKey[any](nil))
	assert.True(isNullKey[[]byte](nil))
	assert.True(isNullKey[map[string]int](nil))
	assert.False(isNullKey[[]byte]([]byte{}))
	assert.False(isNullKey(0))
	assert.False(isNullKey(""))
	assert.False(isNullKey[any](0))
}

func TestSnapshotPersistence(t *testing.T) {
	assert := assert.New(t)
	d := New[int, int]()

	snapshots := []Snapshot[int, int]{d.Snapshot()}
	for i := 0; i < 100; i++ {
		assert.NoError(d.Add((i*37)%101, i))
		snapshots = append(snapshots, d.Snapshot())
	}
	for i := 0; i < 100; i += 3 {
		found, err := d.Remove((i * 37) % 101)
		assert.NoError(err)
		assert.True(found)
		snapshots = append(snapshots, d.Snapshot())
	}

	// every captured version still reports exactly its original contents
	for i, s := range snapshots {
		assert.NoError(s.Verify())
		if i <= 100 {
			assert.Equal(i, s.Len())
			for j := 0; j < i; j++ {
				ok, val, err := s.TryGetValue((j * 37) % 101)
				assert.NoError(err)
				assert.True(ok)
				assert.Equal(j, val)
			}
		}
	}
	assert.Equal(uint64(len(snapshots)-1), d.Version())
	assert.Equal(66, d.Len())
}

func TestConcurrentReaders(t *testing.T) {
	assert := assert.New(t)
	d := New[int, int]()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				k := i*4 + w
				if err := d.Add(k, k); err != nil {
					t.Error(err)
				}
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s := d.Snapshot()
				if err := s.Verify(); err != nil {
					t.Error(err)
				}
				for k, v := range s.All() {
					if k != v {
						t.Error(fmt.Errorf("inconsistent entry %d=%d", k, v))
					}
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(1000, d.Len())
	assert.Equal(uint64(1000), d.Version())
	assert.NoError(d.Snapshot().Verify())
}
