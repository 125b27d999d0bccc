package spuform

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps open drafts in memory. Drafts are never persisted.
type Store struct {
	mu     sync.Mutex
	drafts map[string]State
}

func NewStore() *Store {
	return &Store{drafts: map[string]State{}}
}

func (st *Store) Create(s State) string {
	id := uuid.NewString()
	st.mu.Lock()
	st.drafts[id] = s
	st.mu.Unlock()
	return id
}

func (st *Store) Get(id string) (State, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.drafts[id]
	return s, ok
}

// Update runs fn on the stored draft and keeps its result. On error the
// stored draft is left as it was.
func (st *Store) Update(id string, fn func(State) (State, error)) (State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	cur, ok := st.drafts[id]
	if !ok {
		return State{}, ErrDraftNotFound
	}
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	st.drafts[id] = next
	return next, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.drafts, id)
	st.mu.Unlock()
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.drafts)
}
