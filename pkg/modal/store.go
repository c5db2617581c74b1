package modal

import (
	"reflect"
	"sync"
)

// DispatchFunc applies an action to whatever owns modal state.
type DispatchFunc func(Action) error

// StateFunc returns the current modal state snapshot.
type StateFunc func() State

// Store owns modal state for a Provider. All writes go through Dispatch,
// which runs Reduce and publishes the new snapshot to subscribers.
type Store struct {
	mu      sync.RWMutex
	state   State
	subs    map[int]chan State
	nextSub int
}

// NewStore returns a store holding the empty state.
func NewStore() *Store {
	return &Store{
		state: State{},
		subs:  make(map[int]chan State),
	}
}

// Dispatch reduces action into the current state. Actions are applied in
// call order; subscribers receive the latest snapshot.
func (s *Store) Dispatch(action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reduce(s.state, action)
	if sameState(next, s.state) {
		return nil
	}
	s.state = next
	for _, ch := range s.subs {
		publish(ch, next)
	}
	return nil
}

// Snapshot returns the current state. Callers must not mutate it.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe returns a channel that receives the latest snapshot after each
// transition, and a func that cancels the subscription. Slow readers only
// ever see the newest snapshot.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]chan State)
	}
	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// publish replaces any unread snapshot in ch with state.
func publish(ch chan State, state State) {
	for {
		select {
		case ch <- state:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// sameState reports whether Reduce returned its input unchanged. Reduce
// returns its input map on no-ops, so map identity is enough.
func sameState(a, b State) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
