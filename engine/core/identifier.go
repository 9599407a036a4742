package core

// IDAllocator hands out monotonically increasing identifiers. The counter is
// incremented before the value is returned, so the first id is 1 and 0 stays
// reserved as the invalid id. Released ids are never handed out again.
//
// An allocator belongs to a single backend instance: ids from two allocators
// are unrelated even when numerically equal.
type IDAllocator struct {
	count uint64
}

// Next returns a fresh id.
func (a *IDAllocator) Next() uint64 {
	a.count++
	return a.count
}

// Last returns the most recently issued id, or 0 if none was issued yet.
func (a *IDAllocator) Last() uint64 {
	return a.count
}
