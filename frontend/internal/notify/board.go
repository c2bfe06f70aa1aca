package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Board keeps notifications per owner (a browser session) until they are
// drained or expire. Loading entries never expire on their own; resolved
// entries live for ttl after their last update.
type Board struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	byID  map[ID]*Notification
	order map[string][]ID // owner -> ids in creation order
}

func NewBoard(ttl time.Duration) *Board {
	return &Board{
		ttl:   ttl,
		now:   time.Now,
		byID:  make(map[ID]*Notification),
		order: make(map[string][]ID),
	}
}

// SetClock replaces the board clock, for tests.
func (b *Board) SetClock(now func() time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
}

// For returns a Notifier writing to owner's notifications.
func (b *Board) For(owner string) Notifier {
	return &ownerNotifier{board: b, owner: owner}
}

func (b *Board) create(owner string, kind Kind, msg string) ID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := ID(uuid.NewString())
	b.byID[id] = &Notification{ID: id, Owner: owner, Kind: kind, Message: msg, UpdatedAt: b.now()}
	b.order[owner] = append(b.order[owner], id)
	return id
}

// resolve replaces owner's entry with the same id. An unknown id (already
// drained or expired) starts a new entry so the outcome is still shown; an id
// owned by someone else gets a fresh one.
func (b *Board) resolve(owner string, id ID, kind Kind, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, ok := b.byID[id]
	if ok && n.Owner == owner {
		n.Kind = kind
		n.Message = msg
		n.UpdatedAt = b.now()
		return
	}
	if id == "" || ok {
		id = ID(uuid.NewString())
	}
	b.byID[id] = &Notification{ID: id, Owner: owner, Kind: kind, Message: msg, UpdatedAt: b.now()}
	b.order[owner] = append(b.order[owner], id)
}

func (b *Board) expired(n *Notification, now time.Time) bool {
	if n.Kind == KindLoading || b.ttl <= 0 {
		return false
	}
	return now.Sub(n.UpdatedAt) >= b.ttl
}

// live drops expired entries of owner and returns the rest. Callers hold mu.
func (b *Board) live(owner string) []Notification {
	now := b.now()
	ids := b.order[owner]
	kept := ids[:0]
	out := make([]Notification, 0, len(ids))
	for _, id := range ids {
		n, ok := b.byID[id]
		if !ok {
			continue
		}
		if b.expired(n, now) {
			delete(b.byID, id)
			continue
		}
		kept = append(kept, id)
		out = append(out, *n)
	}
	if len(kept) == 0 {
		delete(b.order, owner)
	} else {
		b.order[owner] = kept
	}
	return out
}

// Pending lists owner's live notifications in creation order.
func (b *Board) Pending(owner string) []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.live(owner)
}

// Drain lists owner's live notifications and forgets the resolved ones.
// Loading entries stay so a later success or error still replaces them.
func (b *Board) Drain(owner string) []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.live(owner)
	var kept []ID
	for _, n := range out {
		if n.Kind == KindLoading {
			kept = append(kept, n.ID)
			continue
		}
		delete(b.byID, n.ID)
	}
	if len(kept) == 0 {
		delete(b.order, owner)
	} else {
		b.order[owner] = kept
	}
	return out
}

// Sweep removes expired notifications of every owner.
func (b *Board) Sweep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for owner := range b.order {
		b.live(owner)
	}
}

// Run sweeps every interval until ctx is done.
func (b *Board) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Sweep()
		}
	}
}

type ownerNotifier struct {
	board *Board
	owner string
}

func (n *ownerNotifier) Loading(_ context.Context, msg string) ID {
	return n.board.create(n.owner, KindLoading, msg)
}

func (n *ownerNotifier) Success(_ context.Context, id ID, msg string) {
	n.board.resolve(n.owner, id, KindSuccess, msg)
}

func (n *ownerNotifier) Error(_ context.Context, id ID, msg string) {
	n.board.resolve(n.owner, id, KindError, msg)
}
