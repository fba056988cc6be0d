package scheduler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockKeys_Deterministic(t *testing.T) {
	a1, a2 := LockKeys("prof-123")
	b1, b2 := LockKeys("prof-123")

	assert.Equal(t, a1, b1)
	assert.Equal(t, a2, b2)
}

func TestLockKeys_SecondKeyIsComplement(t *testing.T) {
	k1, k2 := LockKeys("prof-123")
	assert.Equal(t, ^k1, k2)
}

func TestLockKeys_DifferentProfessionals(t *testing.T) {
	a1, _ := LockKeys("prof-123")
	b1, _ := LockKeys("prof-456")
	assert.NotEqual(t, a1, b1)
}

func TestLockKeys_EmptyID(t *testing.T) {
	k1, k2 := LockKeys("")
	assert.Equal(t, int32(5381), k1)
	assert.Equal(t, ^int32(5381), k2)
}

func TestMutexLock_Exclusion(t *testing.T) {
	locks := NewMutexLock()

	release, err := locks.Acquire(nil, 7, ^int32(7))
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, err := locks.Acquire(nil, 7, ^int32(7))
		assert.NoError(t, err)
		close(acquired)
		r()
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire succeeded while lock was held")
	default:
	}

	release()
	<-acquired
}

func TestMutexLock_IndependentKeys(t *testing.T) {
	locks := NewMutexLock()

	r1, err := locks.Acquire(nil, 1, ^int32(1))
	require.NoError(t, err)
	defer r1()

	// different key pair must not block
	done := make(chan struct{})
	go func() {
		r2, err := locks.Acquire(nil, 2, ^int32(2))
		assert.NoError(t, err)
		r2()
		close(done)
	}()
	<-done
}

func TestMutexLock_ConcurrentCounter(t *testing.T) {
	locks := NewMutexLock()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locks.Acquire(nil, 9, ^int32(9))
			assert.NoError(t, err)
			counter++
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
