// Package cache coordinates re-fetching between mutations and active list
// views: each entity type is a topic, successful mutations publish to it,
// and live queries subscribe so they re-run against the server.
package cache

import "sync"

// Tag identifies one entity type's topic
type Tag string

// Known tags, one per backend collection
const (
	TagCategory    Tag = "Category"
	TagSubcategory Tag = "Subcategory"
	TagVideo       Tag = "Video"
	TagShort       Tag = "Short"
	TagFeedback    Tag = "Feedback"
	TagOverview    Tag = "Overview"
	TagContent     Tag = "Content"
)

// Subscription receives one signal per invalidation of its tag
type Subscription struct {
	C chan struct{}

	inv *Invalidator
	tag Tag
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.inv.cancel(s)
}

// Invalidator is the in-process invalidation bus
type Invalidator struct {
	mu   sync.Mutex
	subs map[Tag]map[*Subscription]struct{}
}

// NewInvalidator creates an empty Invalidator
func NewInvalidator() *Invalidator {
	return &Invalidator{subs: make(map[Tag]map[*Subscription]struct{})}
}

// Subscribe registers interest in a tag. The returned subscription's
// channel is buffered so a publish never blocks; coalescing back-to-back
// invalidations into one pending signal is fine, the re-fetch always reads
// current server state.
func (i *Invalidator) Subscribe(tag Tag) *Subscription {
	sub := &Subscription{C: make(chan struct{}, 1), inv: i, tag: tag}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.subs[tag] == nil {
		i.subs[tag] = make(map[*Subscription]struct{})
	}
	i.subs[tag][sub] = struct{}{}
	return sub
}

// Publish marks a tag stale, signalling every active subscriber once
func (i *Invalidator) Publish(tag Tag) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for sub := range i.subs[tag] {
		select {
		case sub.C <- struct{}{}:
		default:
		}
	}
}

func (i *Invalidator) cancel(sub *Subscription) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.subs[sub.tag], sub)
}
