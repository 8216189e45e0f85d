package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_SetIfAbsent(t *testing.T) {
	s := New[string, int]()

	assert.True(t, s.SetIfAbsent("a", 1))
	assert.False(t, s.SetIfAbsent("a", 2))

	val, _ := s.Get("a")
	assert.Equal(t, 1, val)
}

func TestStore_Update(t *testing.T) {
	s := New[string, int]()
	s.Set("a", 1)

	ok := s.Update("a", func(v int) (int, bool) { return v + 1, true })
	assert.True(t, ok)
	val, _ := s.Get("a")
	assert.Equal(t, 2, val)

	ok = s.Update("a", func(v int) (int, bool) { return 100, false })
	assert.False(t, ok)
	val, _ = s.Get("a")
	assert.Equal(t, 2, val)

	ok = s.Update("missing", func(v int) (int, bool) { return 1, true })
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Delete(t *testing.T) {
	s := New[string, string]()
	s.Set("key", "value")

	s.Delete("key")

	_, ok := s.Get("key")
	assert.False(t, ok)
}

func TestStore_KeysSorted(t *testing.T) {
	s := New[string, int]()
	s.Set("c", 3)
	s.Set("a", 1)
	s.Set("b", 2)

	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
}

func TestStore_ConcurrentUpdate(t *testing.T) {
	s := New[int, int]()
	s.Set(0, 0)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(0, func(v int) (int, bool) { return v + 1, true })
		}()
	}

	wg.Wait()

	val, _ := s.Get(0)
	assert.Equal(t, 100, val)
}
