package fifo

// storage is the fixed array of word slots owned by a queue. It has
// dual-port semantics: at most one write and one lookahead read per cycle,
// always at disjoint addresses. A slot's content is meaningful only while the
// slot lies between the read and write cursors; anything outside that range
// is stale.
type storage struct {
	words []Word
}

func newStorage(capacity int) *storage {
	return &storage{
		words: make([]Word, capacity),
	}
}

func (s *storage) write(addr int, w Word) {
	s.words[addr] = w
}

func (s *storage) read(addr int) Word {
	return s.words[addr]
}
