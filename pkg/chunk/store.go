package chunk

// Store owns the chunk list for one file under formatting: head, tail, and
// the chunk count. It is the only component allowed to create, link, move,
// or destroy chunks; everything else holds borrowed references. A Store is
// built fresh per file and carries no state across files.
type Store struct {
	head  *Chunk
	tail  *Chunk
	count int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Head returns the first chunk, nil when the list is empty.
func (s *Store) Head() *Chunk {
	return s.head
}

// Tail returns the last chunk, nil when the list is empty.
func (s *Store) Tail() *Chunk {
	return s.tail
}

// Len returns the number of chunks in the list.
func (s *Store) Len() int {
	return s.count
}

// IsEmpty returns true if the list holds no chunks.
func (s *Store) IsEmpty() bool {
	return s.count == 0
}

// Reset drops every chunk, returning the store to its initial state.
// Outstanding chunk handles become invalid.
func (s *Store) Reset() {
	s.head = nil
	s.tail = nil
	s.count = 0
}

// Dup produces an unlinked copy of src with identical kind, parent, flags,
// level, text and position. Returns nil if src is nil.
func (s *Store) Dup(src *Chunk) *Chunk {
	if src == nil {
		return nil
	}
	cp := *src
	cp.prev = nil
	cp.next = nil
	return &cp
}

// Append adds a copy of proto at the tail and returns the stored chunk.
// This is the lexer's entry point for populating the list in source order.
func (s *Store) Append(proto *Chunk) *Chunk {
	return s.AddAfter(proto, s.tail)
}

// AddAfter inserts a copy of src immediately after ref and returns the
// inserted chunk. A nil ref appends at the tail.
func (s *Store) AddAfter(src, ref *Chunk) *Chunk {
	pc := s.Dup(src)
	if pc == nil {
		return nil
	}
	if ref == nil {
		ref = s.tail
	}
	s.linkAfter(pc, ref)
	return pc
}

// AddBefore inserts a copy of src immediately before ref and returns the
// inserted chunk. A nil ref inserts at the head.
func (s *Store) AddBefore(src, ref *Chunk) *Chunk {
	pc := s.Dup(src)
	if pc == nil {
		return nil
	}
	if ref == nil {
		s.linkAfter(pc, nil)
		return pc
	}
	s.linkBefore(pc, ref)
	return pc
}

// Delete unlinks pc and removes it from the list. Safe to call with nil.
// The caller's handle is dead afterward and must not be dereferenced.
func (s *Store) Delete(pc *Chunk) {
	if pc == nil {
		return
	}
	s.unlink(pc)
	pc.prev = nil
	pc.next = nil
}

// MoveAfter relocates an existing chunk (no duplication) to immediately
// follow ref, preserving all its fields. A nil ref moves pc to the head.
func (s *Store) MoveAfter(pc, ref *Chunk) {
	if pc == nil || pc == ref {
		return
	}
	s.unlink(pc)
	s.linkAfter(pc, ref)
}

// MoveBefore relocates an existing chunk to immediately precede ref.
// A nil ref moves pc to the head.
func (s *Store) MoveBefore(pc, ref *Chunk) {
	if pc == nil || pc == ref {
		return
	}
	s.unlink(pc)
	if ref == nil {
		s.linkAfter(pc, nil)
		return
	}
	s.linkBefore(pc, ref)
}

// Swap exchanges the list positions of a and b while preserving their own
// content. Identity swap: the chunks move, their fields do not.
func (s *Store) Swap(a, b *Chunk) {
	if a == nil || b == nil || a == b {
		return
	}
	// Normalize so that an adjacent pair is always a then b.
	if b.next == a {
		a, b = b, a
	}
	if a.next == b {
		prev, next := a.prev, b.next
		s.attach(prev, b)
		s.attach(b, a)
		s.attach(a, next)
		return
	}
	aPrev, aNext := a.prev, a.next
	bPrev, bNext := b.prev, b.next
	s.attach(aPrev, b)
	s.attach(b, aNext)
	s.attach(bPrev, a)
	s.attach(a, bNext)
}

// SwapLines exchanges the two physical lines starting at (or containing)
// a and b as contiguous runs. A line is the maximal run of chunks ending at
// a newline or at the end of the list; each line keeps its own terminating
// newline in place.
func (s *Store) SwapLines(a, b *Chunk) {
	a = a.FirstOnLine()
	b = b.FirstOnLine()
	if a == nil || b == nil || a == b {
		return
	}
	// Keep a as the earlier line.
	if a.ComparePosition(b) > 0 {
		a, b = b, a
	}

	// List shape: ? - a .. nlA - ? - ref - b .. nlB - ?
	ref := b.prev

	// Move line b in front of line a.
	for b != nil && !b.IsNewline() {
		next := b.next
		s.MoveBefore(b, a)
		b = next
	}

	// Move line a to where line b used to start, right after ref.
	for a != nil && !a.IsNewline() {
		next := a.next
		if ref != nil {
			s.MoveAfter(a, ref)
		} else {
			s.MoveAfter(a, nil) // head
		}
		ref = a
		a = next
	}
}

// FirstOnLine backs up to the first chunk on the line pc is on: the chunk
// just after the previous newline, or the list head.
func (pc *Chunk) FirstOnLine() *Chunk {
	if pc == nil {
		return nil
	}
	first := pc
	for prev := pc.prev; prev != nil && !prev.IsNewline(); prev = prev.prev {
		first = prev
	}
	return first
}

// IsLastOnLine returns true if pc is the last chunk before a newline or the
// end of the list.
func (pc *Chunk) IsLastOnLine() bool {
	if pc == nil {
		return false
	}
	return pc.next == nil || pc.next.IsNewline()
}

// linkAfter links the unlinked chunk pc immediately after ref. A nil ref
// links pc at the head.
func (s *Store) linkAfter(pc, ref *Chunk) {
	if ref == nil {
		pc.prev = nil
		pc.next = s.head
		if s.head != nil {
			s.head.prev = pc
		} else {
			s.tail = pc
		}
		s.head = pc
	} else {
		pc.prev = ref
		pc.next = ref.next
		if ref.next != nil {
			ref.next.prev = pc
		} else {
			s.tail = pc
		}
		ref.next = pc
	}
	s.count++
}

// linkBefore links the unlinked chunk pc immediately before ref (non-nil).
func (s *Store) linkBefore(pc, ref *Chunk) {
	pc.prev = ref.prev
	pc.next = ref
	if ref.prev != nil {
		ref.prev.next = pc
	} else {
		s.head = pc
	}
	ref.prev = pc
	s.count++
}

// unlink removes pc from the list, fixing head, tail and count. The links
// of pc itself are left for the caller to clear or rewire.
func (s *Store) unlink(pc *Chunk) {
	if pc.prev != nil {
		pc.prev.next = pc.next
	} else if s.head == pc {
		s.head = pc.next
	}
	if pc.next != nil {
		pc.next.prev = pc.prev
	} else if s.tail == pc {
		s.tail = pc.prev
	}
	if s.count > 0 {
		s.count--
	}
}

// attach wires prev.next = cur and cur.prev = prev, updating head/tail when
// either side is the list boundary. Used by Swap, where the chunks being
// rewired are already members of the list.
func (s *Store) attach(prev, cur *Chunk) {
	if prev != nil {
		prev.next = cur
	} else {
		s.head = cur
	}
	if cur != nil {
		cur.prev = prev
	} else {
		s.tail = prev
	}
}
