package events

import "sync"

// Topic names an event stream.
type Topic string

const (
	// TaskCompleted fires whenever a task is marked done. No payload beyond the id.
	TaskCompleted Topic = "taskCompleted"
	// TaskPauseStateChanged fires when a task's pause flag flips.
	TaskPauseStateChanged Topic = "taskPauseStateChanged"
)

// Event is a single published notification.
type Event struct {
	Topic  Topic
	TaskID string
	Paused bool
}

// Bus is a minimal in-process pub/sub hub. Publish is fire-and-forget: slow
// subscribers drop events rather than blocking the publisher, and no ordering
// is guaranteed across subscribers.
type Bus struct {
	mu   sync.Mutex
	subs map[Topic][]chan Event
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]chan Event)}
}

// Subscribe registers interest in a topic and returns the delivery channel.
func (b *Bus) Subscribe(topic Topic) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 16)
	b.subs[topic] = append(b.subs[topic], ch)
	return ch
}

// Publish delivers ev to every subscriber of its topic without blocking.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[ev.Topic] {
		select {
		case ch <- ev:
		default:
			// Subscriber buffer full; drop rather than block the mutation path.
		}
	}
}
