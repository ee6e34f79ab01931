// Package events is the change-notification bus between the data
// manager and anything rendering a collection. Topics are typed and the
// event names the collection that changed; subscribers still re-fetch
// through the manager (notifications carry no collection data).
package events

import (
	"sort"
	"sync"
)

// Topic identifies one domain collection.
type Topic string

const (
	TopicProducts      Topic = "products"
	TopicOrders        Topic = "orders"
	TopicSales         Topic = "sales"
	TopicSuppliers     Topic = "suppliers"
	TopicCustomers     Topic = "customers"
	TopicNotifications Topic = "notifications"
	TopicSettings      Topic = "settings"
	TopicProfile       Topic = "profile"
)

// Event is delivered to subscribers. It identifies what changed, not
// the new value: consumers pull the fresh collection themselves.
type Event struct {
	Topic Topic
}

// Handler receives events for one topic subscription.
type Handler func(Event)

// Bus fans events out synchronously on the publisher's goroutine, in
// subscription order per topic. Best-effort: no queueing, no retry.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[Topic]map[int]Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[int]Handler)}
}

// Subscribe registers h for topic and returns an id for Unsubscribe.
// A component must unsubscribe on teardown so a torn-down view never
// reacts to a change event.
func (b *Bus) Subscribe(topic Topic, h Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	b.subs[topic][b.next] = h
	return b.next
}

func (b *Bus) Unsubscribe(topic Topic, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs[topic], id)
}

// Publish delivers the event to every current subscriber of topic.
// Handlers run outside the bus lock so they may publish or subscribe
// without deadlocking.
func (b *Bus) Publish(topic Topic) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.subs[topic]))
	for id := range b.subs[topic] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.subs[topic][id])
	}
	b.mu.Unlock()

	ev := Event{Topic: topic}
	for _, h := range handlers {
		h(ev)
	}
}
