package clipboard

import "clipmon/internal/util"

// DedupSet remembers every content offered to the store during one run.
// Entries are keyed by content hash and never evicted.
type DedupSet struct {
	seen map[string]struct{}
}

func NewDedupSet() *DedupSet {
	return &DedupSet{seen: make(map[string]struct{})}
}

func (s *DedupSet) Contains(content string) bool {
	_, ok := s.seen[util.GenerateHash(content)]
	return ok
}

func (s *DedupSet) Add(content string) {
	s.seen[util.GenerateHash(content)] = struct{}{}
}

func (s *DedupSet) Len() int {
	return len(s.seen)
}
