package focus

// PartitionSet is an ordered collection of task ids. A task's order index is
// its position in the sequence, so indices are a dense permutation of
// 0..n-1 after every mutation by construction. Ids never repeat within a set.
type PartitionSet struct {
	ids []string
}

// NewPartitionSet creates a set holding the given ids in order.
func NewPartitionSet(ids ...string) *PartitionSet {
	p := &PartitionSet{}
	for _, id := range ids {
		p.Append(id)
	}
	return p
}

// Len returns the number of tasks in the set.
func (p *PartitionSet) Len() int {
	return len(p.ids)
}

// IDs returns the ids in order. The returned slice is a copy.
func (p *PartitionSet) IDs() []string {
	out := make([]string, len(p.ids))
	copy(out, p.ids)
	return out
}

// IndexOf returns the order index of id, or -1 if absent.
func (p *PartitionSet) IndexOf(id string) int {
	for i, existing := range p.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is a member of the set.
func (p *PartitionSet) Contains(id string) bool {
	return p.IndexOf(id) >= 0
}

// Append inserts id at the end. A no-op if id is already a member.
func (p *PartitionSet) Append(id string) {
	if p.Contains(id) {
		return
	}
	p.ids = append(p.ids, id)
}

// Insert places id at the given index, clamped to [0, Len]. Entries at or
// after the index shift down. If id is already a member this is a move to
// the clamped index.
func (p *PartitionSet) Insert(id string, index int) {
	p.Remove(id)

	if index < 0 {
		index = 0
	}
	if index > len(p.ids) {
		index = len(p.ids)
	}

	p.ids = append(p.ids, "")
	copy(p.ids[index+1:], p.ids[index:])
	p.ids[index] = id
}

// Remove deletes id if present and reports whether anything changed.
// Removing an absent id is a no-op, not an error.
func (p *PartitionSet) Remove(id string) bool {
	i := p.IndexOf(id)
	if i < 0 {
		return false
	}
	p.ids = append(p.ids[:i], p.ids[i+1:]...)
	return true
}

// Move removes the entry at from and re-inserts it at to. Both indices are
// clamped to valid range; moving an entry onto itself is a no-op.
func (p *PartitionSet) Move(from, to int) {
	n := len(p.ids)
	if n == 0 {
		return
	}

	if from < 0 {
		from = 0
	}
	if from > n-1 {
		from = n - 1
	}
	if to < 0 {
		to = 0
	}
	if to > n-1 {
		to = n - 1
	}
	if from == to {
		return
	}

	id := p.ids[from]
	p.ids = append(p.ids[:from], p.ids[from+1:]...)
	p.ids = append(p.ids, "")
	copy(p.ids[to+1:], p.ids[to:])
	p.ids[to] = id
}

// Clear empties the set.
func (p *PartitionSet) Clear() {
	p.ids = nil
}
