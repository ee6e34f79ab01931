package events

import (
	"reflect"
	"testing"
)

func TestPublishFanOutInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var order []string

	b.Subscribe(TopicProducts, func(Event) { order = append(order, "first") })
	b.Subscribe(TopicProducts, func(Event) { order = append(order, "second") })
	b.Subscribe(TopicSales, func(Event) { order = append(order, "sales") })

	b.Publish(TopicProducts)

	want := []string{"first", "second"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("delivery order = %v, want %v", order, want)
	}
}

func TestEventNamesChangedCollection(t *testing.T) {
	b := NewBus()
	var got Topic
	b.Subscribe(TopicOrders, func(ev Event) { got = ev.Topic })

	b.Publish(TopicOrders)

	if got != TopicOrders {
		t.Fatalf("event topic = %q, want %q", got, TopicOrders)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus()
	calls := 0
	id := b.Subscribe(TopicProducts, func(Event) { calls++ })

	b.Publish(TopicProducts)
	b.Unsubscribe(TopicProducts, id)
	b.Publish(TopicProducts)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestHandlerMayPublishWithoutDeadlock(t *testing.T) {
	b := NewBus()
	salesSeen := false
	b.Subscribe(TopicSales, func(Event) { salesSeen = true })
	b.Subscribe(TopicProducts, func(Event) { b.Publish(TopicSales) })

	b.Publish(TopicProducts)

	if !salesSeen {
		t.Fatal("nested publish was not delivered")
	}
}
