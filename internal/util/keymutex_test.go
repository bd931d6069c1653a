package util

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	km := NewKeyMutex()

	var (
		wg      sync.WaitGroup
		active  int32
		maxSeen int32
		counter int
	)

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := km.Lock("cafe-1")
			defer unlock()

			cur := atomic.AddInt32(&active, 1)
			for {
				prev := atomic.LoadInt32(&maxSeen)
				if cur <= prev || atomic.CompareAndSwapInt32(&maxSeen, prev, cur) {
					break
				}
			}
			counter++
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, int32(1), maxSeen)
	assert.Equal(t, 0, km.Len())
}

func TestKeyMutex_DistinctKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	km := NewKeyMutex()

	unlockA := km.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on key b blocked behind key a")
	}
}

func TestKeyMutex_UnlockIsIdempotent(t *testing.T) {
	t.Parallel()

	km := NewKeyMutex()

	unlock := km.Lock("a")
	unlock()
	unlock()

	assert.Equal(t, 0, km.Len())

	relock := km.Lock("a")
	relock()
}
