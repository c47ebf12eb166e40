package storage

import "sync"

type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// Change describes a completed write to the habits table
type Change struct {
	Kind    ChangeKind
	HabitID string
}

// Broadcaster fans habit changes out to subscribers. The zero value is ready to use.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Change)
}

func (b *Broadcaster) Subscribe(fn func(Change)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]func(Change))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish calls every subscriber with c. Callbacks run outside the lock so
// they may read from the store or unsubscribe.
func (b *Broadcaster) Publish(c Change) {
	b.mu.Lock()
	fns := make([]func(Change), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}
