package scheduler

import (
	"sync"

	"gorm.io/gorm"
)

// LockKeys derives the two signed 32-bit lock keys for a professional id
// using the DJB2 variant the existing deployments store locks under:
// h = 5381; h = h*33 XOR byte for each byte; keys are h and its bitwise
// complement. Collisions between professionals only over-serialize, never
// under-serialize.
func LockKeys(professionalID string) (int32, int32) {
	h := uint32(5381)
	for i := 0; i < len(professionalID); i++ {
		h = h*33 ^ uint32(professionalID[i])
	}
	return int32(h), ^int32(h)
}

// NamedLock serializes booking attempts per professional. Acquire blocks
// until the lock identified by the key pair is held. The returned release
// func must be called after the surrounding transaction has committed or
// rolled back; implementations whose lock is already transaction-scoped
// return a nil release.
type NamedLock interface {
	Acquire(tx *gorm.DB, key1, key2 int32) (release func(), err error)
}

// AdvisoryLock backs NamedLock with pg_advisory_xact_lock. The database
// releases the lock when the transaction ends, so there is no manual release
// and no window where a session can hold the lock across independent
// operations.
type AdvisoryLock struct{}

func (AdvisoryLock) Acquire(tx *gorm.DB, key1, key2 int32) (func(), error) {
	if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", key1, key2).Error; err != nil {
		return nil, err
	}
	return nil, nil
}

// MutexLock is an in-process per-key mutex table for single-node deployments
// and tests, where the database cannot provide advisory locks.
type MutexLock struct {
	mu    sync.Mutex
	locks map[[2]int32]*sync.Mutex
}

func NewMutexLock() *MutexLock {
	return &MutexLock{locks: make(map[[2]int32]*sync.Mutex)}
}

func (m *MutexLock) Acquire(tx *gorm.DB, key1, key2 int32) (func(), error) {
	key := [2]int32{key1, key2}

	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock, nil
}
