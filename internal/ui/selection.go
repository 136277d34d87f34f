package ui

import "sync"

// Selection holds the most recently clicked note. Subscribers are called
// synchronously on every Set, in subscription order.
type Selection struct {
	mu     sync.Mutex
	note   *Note
	nextID int
	subs   map[int]func(*Note)
	order  []int
}

func NewSelection() *Selection {
	return &Selection{subs: map[int]func(*Note){}}
}

func (s *Selection) Get() *Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.note
}

// Set replaces the selection and notifies subscribers.
func (s *Selection) Set(n *Note) {
	s.mu.Lock()
	s.note = n
	fns := make([]func(*Note), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(n)
	}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Selection) Subscribe(fn func(*Note)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
