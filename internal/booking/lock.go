package booking

import "sync"

// tableLocks serializes the check-then-write section of booking admission
// per table. Requests for different tables proceed in parallel; two
// requests for the same table are forced through one at a time so the
// loser observes the winner's write.
type tableLocks struct {
	locks sync.Map // table id -> *sync.Mutex
}

func newTableLocks() *tableLocks {
	return &tableLocks{}
}

// lock acquires the mutex for the given table id, creating it on first use,
// and returns the matching unlock function. The map only ever grows, bounded
// by the number of distinct tables.
func (l *tableLocks) lock(tableID string) func() {
	v, _ := l.locks.LoadOrStore(tableID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
