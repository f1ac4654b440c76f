package parser

import "sync"

// memoKey identifies one Memo parser at one offset.
type memoKey struct {
	id  *int
	off int
}

type memoTable struct {
	mu      sync.Mutex
	results map[memoKey]any
}

func newMemoTable() *memoTable {
	return &memoTable{results: make(map[memoKey]any)}
}

func (m *memoTable) load(key memoKey) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.results[key]
	return r, ok
}

func (m *memoTable) store(key memoKey, r any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[key] = r
}

// Memo runs p at most once per offset of a source buffer and replays the
// cached result afterwards. The cache lives as long as the views created by
// one NewInput call.
//
// Views not created by NewInput carry no cache and always run p.
func Memo[T any](p Parser[T]) Parser[T] {
	id := new(int)
	return func(in Input) Result[T] {
		if in.memo == nil {
			return p(in)
		}

		key := memoKey{id: id, off: in.off}
		if cached, ok := in.memo.load(key); ok {
			return cached.(Result[T])
		}
		r := p(in)
		in.memo.store(key, r)
		return r
	}
}
