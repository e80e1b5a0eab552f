package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedSerializesSameKey(t *testing.T) {
	k := NewKeyed()

	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("room:1")
			defer k.Unlock("room:1")
			counter++
		}()
	}

	wg.Wait()
	assert.Equal(t, 100, counter)
}

func TestKeyedIndependentKeys(t *testing.T) {
	k := NewKeyed()

	k.Lock("room:1")

	done := make(chan struct{})
	go func() {
		k.Lock("room:2")
		k.Unlock("room:2")
		close(done)
	}()

	// A different key must not block behind room:1.
	<-done

	k.Unlock("room:1")
}

func TestKeyedReleasesEntries(t *testing.T) {
	k := NewKeyed()

	k.Lock("trainer:5:day:2")
	k.Unlock("trainer:5:day:2")

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.locks)
}
