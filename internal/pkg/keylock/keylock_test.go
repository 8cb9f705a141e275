package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyLock_MutualExclusionPerKey(t *testing.T) {
	l := New()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("court-1|2025-06-01")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyLock_IndependentKeysDoNotBlock(t *testing.T) {
	l := New()

	unlockA := l.Lock("court-1|2025-06-01")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := l.Lock("court-2|2025-06-01")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyLock_EntryRemovedAfterLastRelease(t *testing.T) {
	l := New()

	unlock := l.Lock("k")
	unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.entries)
}
