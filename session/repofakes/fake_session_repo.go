package repofakes

import (
	"sync"

	"github.com/workzen/hrms-client/session"
)

var _ session.Repo = (*FakeSessionRepo)(nil)

// FakeSessionRepo is an in-memory session.Repo for tests.
type FakeSessionRepo struct {
	entries map[string]string
	lock    sync.RWMutex

	// FailWrites makes Set return this error when non-nil.
	FailWrites error
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{
		entries: make(map[string]string),
	}
}

func (r *FakeSessionRepo) Get(key string) (string, bool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	value, ok := r.entries[key]
	return value, ok, nil
}

func (r *FakeSessionRepo) Set(key, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.FailWrites != nil {
		return r.FailWrites
	}
	r.entries[key] = value
	return nil
}

func (r *FakeSessionRepo) Delete(key string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	delete(r.entries, key)
	return nil
}

// Len reports how many entries are stored.
func (r *FakeSessionRepo) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.entries)
}
