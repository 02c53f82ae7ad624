package engine

import (
	"sort"
	"strings"

	"github.com/kamstrup/intmap"
)

// CollisionState says whether a contact started or ended.
type CollisionState int

const (
	CollisionBegin CollisionState = iota
	CollisionEnd
)

// IsBegin reports whether the state is CollisionBegin.
func (s CollisionState) IsBegin() bool { return s == CollisionBegin }

// IsEnd reports whether the state is CollisionEnd.
func (s CollisionState) IsEnd() bool { return s == CollisionEnd }

// CollisionPair holds the two labels of a contact in sorted order.
type CollisionPair [2]string

func newPair(a, b string) CollisionPair {
	if b < a {
		a, b = b, a
	}
	return CollisionPair{a, b}
}

// EitherEquals reports whether either label equals s.
func (p CollisionPair) EitherEquals(s string) bool {
	return p[0] == s || p[1] == s
}

// EitherContains reports whether either label contains s.
func (p CollisionPair) EitherContains(s string) bool {
	return strings.Contains(p[0], s) || strings.Contains(p[1], s)
}

// EitherStartsWith reports whether either label starts with prefix.
func (p CollisionPair) EitherStartsWith(prefix string) bool {
	return strings.HasPrefix(p[0], prefix) || strings.HasPrefix(p[1], prefix)
}

// OneStartsWith reports whether exactly one label starts with prefix.
func (p CollisionPair) OneStartsWith(prefix string) bool {
	return strings.HasPrefix(p[0], prefix) != strings.HasPrefix(p[1], prefix)
}

// BothStartWith reports whether both labels start with prefix.
func (p CollisionPair) BothStartWith(prefix string) bool {
	return strings.HasPrefix(p[0], prefix) && strings.HasPrefix(p[1], prefix)
}

// CollisionEvent is a contact change between two colliding sprites.
type CollisionEvent struct {
	State CollisionState
	Pair  CollisionPair
}

type contact struct {
	key  uint64
	pair CollisionPair
}

// contactTracker turns per-frame overlaps into begin/end events.
// Contacts are keyed by sprite ids, so a label that is removed and
// re-added counts as a new sprite.
type contactTracker struct {
	active *intmap.Map[uint64, CollisionPair]
	order  []contact
}

func newContactTracker() *contactTracker {
	return &contactTracker{active: intmap.New[uint64, CollisionPair](64)}
}

func pairKey(a, b uint32) uint64 {
	if b < a {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// update compares the colliders' current overlaps with the previous
// frame and returns the resulting events: ends first, then begins, each
// ordered by label pair.
func (t *contactTracker) update(colliders []*Sprite) []CollisionEvent {
	current := intmap.New[uint64, CollisionPair](len(t.order) + 8)
	var order []contact
	var begins []CollisionEvent

	for i := 0; i < len(colliders); i++ {
		a := colliders[i]
		ab := a.bounds()
		for j := i + 1; j < len(colliders); j++ {
			b := colliders[j]
			if !ab.overlaps(b.bounds()) {
				continue
			}
			key := pairKey(a.id, b.id)
			pair := newPair(a.Label, b.Label)
			current.Put(key, pair)
			order = append(order, contact{key: key, pair: pair})
			if _, ok := t.active.Get(key); !ok {
				begins = append(begins, CollisionEvent{State: CollisionBegin, Pair: pair})
			}
		}
	}

	var ends []CollisionEvent
	for _, c := range t.order {
		if _, ok := current.Get(c.key); !ok {
			ends = append(ends, CollisionEvent{State: CollisionEnd, Pair: c.pair})
		}
	}

	t.active = current
	t.order = order

	sortEvents(ends)
	sortEvents(begins)
	return append(ends, begins...)
}

func (t *contactTracker) reset() {
	t.active.Clear()
	t.order = nil
}

func sortEvents(events []CollisionEvent) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Pair[0] != events[j].Pair[0] {
			return events[i].Pair[0] < events[j].Pair[0]
		}
		return events[i].Pair[1] < events[j].Pair[1]
	})
}
