package tasks

import "sync"

// keyedMutex serializes transitions per owner or per task within this
// process. The row store offers no compare-and-swap, so without this two
// concurrent transitions could both pass their read-side state check before
// either writes. Cross-process races remain possible; the store is still
// re-read before every write.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for key and returns its unlock function. Entries
// are kept for the process lifetime; the key space is bounded by the agent
// roster and their task IDs.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
