package input

import "github.com/Faultbox/camrig/internal/camera"

// EventType identifies a window event.
type EventType int

// Event types reported by the backends.
const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event is a window event translated to backend-neutral codes.
type Event struct {
	Type   EventType
	Key    camera.Key
	Width  int
	Height int
}

// Queue collects the events of one frame.
type Queue struct {
	events []Event
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Reset drops all events; called at the start of a frame.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}

// Events returns the events pushed since the last Reset.
func (q *Queue) Events() []Event {
	return q.events
}

// IsKeyPressed reports whether key went down this frame.
func (q *Queue) IsKeyPressed(key camera.Key) bool {
	for _, e := range q.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// QuitRequested reports whether a quit event arrived this frame.
func (q *Queue) QuitRequested() bool {
	for _, e := range q.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}
