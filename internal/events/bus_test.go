package events

import (
	"testing"
	"time"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	subA := bus.Subscribe(TaskCompleted)
	subB := bus.Subscribe(TaskCompleted)

	bus.Publish(Event{Topic: TaskCompleted, TaskID: "t1"})

	for _, sub := range []<-chan Event{subA, subB} {
		select {
		case evt := <-sub:
			if evt.TaskID != "t1" {
				t.Errorf("TaskID = %q, want t1", evt.TaskID)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestBusTopicIsolation(t *testing.T) {
	bus := NewBus()
	pauses := bus.Subscribe(TaskPauseStateChanged)

	bus.Publish(Event{Topic: TaskCompleted, TaskID: "t1"})

	select {
	case evt := <-pauses:
		t.Errorf("pause subscriber received %+v", evt)
	default:
	}
}

func TestBusDoesNotBlockOnFullSubscriber(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(TaskCompleted) // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(Event{Topic: TaskCompleted, TaskID: "t"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
}
