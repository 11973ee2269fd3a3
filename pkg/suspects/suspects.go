package suspects

import "sort"

// DefaultBuckets is the fixed bucket count of an Index. Indexes never resize.
const DefaultBuckets = 101

const djb2Seed = 5381

type entry struct {
	clue    string
	suspect string
	next    *entry
}

// Index maps clue text to a suspect name using separate chaining.
type Index struct {
	buckets []*entry
	size    int
}

// New creates an index with DefaultBuckets buckets.
func New() *Index {
	return NewWithBuckets(DefaultBuckets)
}

// NewWithBuckets creates an index with n buckets (at least one).
func NewWithBuckets(n int) *Index {
	if n < 1 {
		n = 1
	}
	return &Index{buckets: make([]*entry, n)}
}

// FromTable builds a default-sized index from a clue → suspect table.
func FromTable(table map[string]string) *Index {
	idx := New()
	// sorted so chain order does not depend on map iteration
	keys := make([]string, 0, len(table))
	for clue := range table {
		keys = append(keys, clue)
	}
	sort.Strings(keys)
	for _, clue := range keys {
		idx.Put(clue, table[clue])
	}
	return idx
}

// Hash is djb2 over the bytes of text.
func Hash(text string) uint64 {
	h := uint64(djb2Seed)
	for i := 0; i < len(text); i++ {
		h = h*33 + uint64(text[i])
	}
	return h
}

func (idx *Index) bucket(clue string) int {
	return int(Hash(clue) % uint64(len(idx.buckets)))
}

// Put associates clue with suspect. An existing association is overwritten.
func (idx *Index) Put(clue, suspect string) {
	b := idx.bucket(clue)
	for e := idx.buckets[b]; e != nil; e = e.next {
		if e.clue == clue {
			e.suspect = suspect
			return
		}
	}
	idx.buckets[b] = &entry{clue: clue, suspect: suspect, next: idx.buckets[b]}
	idx.size++
}

// Get returns the suspect linked to clue.
func (idx *Index) Get(clue string) (string, bool) {
	for e := idx.buckets[idx.bucket(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// Len returns the number of clues in the index.
func (idx *Index) Len() int {
	return idx.size
}

// Suspects returns the distinct suspect names, sorted.
func (idx *Index) Suspects() []string {
	seen := make(map[string]struct{})
	for _, head := range idx.buckets {
		for e := head; e != nil; e = e.next {
			seen[e.suspect] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
