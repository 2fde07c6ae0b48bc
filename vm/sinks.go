package vm

import "sync"

// TraceSink is a renderer which logs every notification to the trace.
type TraceSink struct{}

// ExpectCommands is part of interface Renderer.
func (TraceSink) ExpectCommands(n int) {
	tracer().Debugf("expecting %d commands", n)
}

// Notify is part of interface Renderer.
func (TraceSink) Notify(note Notification) {
	tracer().P("turtle", note.Turtle.Name).Debugf("%s: %s (%g,%g) %g° = %g", note.Category,
		note.Command, note.Turtle.X, note.Turtle.Y, note.Turtle.Heading, note.Value)
}

// Recorder is a renderer which collects all notifications. It is safe
// for concurrent use.
type Recorder struct {
	mx       sync.Mutex
	expected []int
	notes    []Notification
}

// ExpectCommands is part of interface Renderer.
func (rec *Recorder) ExpectCommands(n int) {
	rec.mx.Lock()
	defer rec.mx.Unlock()
	rec.expected = append(rec.expected, n)
}

// Notify is part of interface Renderer.
func (rec *Recorder) Notify(note Notification) {
	rec.mx.Lock()
	defer rec.mx.Unlock()
	rec.notes = append(rec.notes, note)
}

// Notifications returns a copy of all notifications received so far.
func (rec *Recorder) Notifications() []Notification {
	rec.mx.Lock()
	defer rec.mx.Unlock()
	notes := make([]Notification, len(rec.notes))
	copy(notes, rec.notes)
	return notes
}

// Expected returns all command count hints received so far.
func (rec *Recorder) Expected() []int {
	rec.mx.Lock()
	defer rec.mx.Unlock()
	exp := make([]int, len(rec.expected))
	copy(exp, rec.expected)
	return exp
}

// Reset drops all recorded notifications and hints.
func (rec *Recorder) Reset() {
	rec.mx.Lock()
	defer rec.mx.Unlock()
	rec.expected, rec.notes = nil, nil
}

// AsyncSink decouples a renderer from the engine. Notifications are put
// into a buffered channel and forwarded to the target renderer by a
// separate goroutine. The engine blocks only if the buffer is full.
type AsyncSink struct {
	target Renderer
	events chan event
	done   chan struct{}
	once   sync.Once
}

type event struct {
	expect int
	note   Notification
	isHint bool
}

// NewAsyncSink starts a goroutine forwarding notifications to target.
// Clients must call Close to stop it.
func NewAsyncSink(target Renderer, buffer int) *AsyncSink {
	if buffer < 0 {
		buffer = 0
	}
	sink := &AsyncSink{
		target: target,
		events: make(chan event, buffer),
		done:   make(chan struct{}),
	}
	go sink.forward()
	return sink
}

func (sink *AsyncSink) forward() {
	tracer().Debugf("async sink starts forwarding")
	for ev := range sink.events {
		if ev.isHint {
			sink.target.ExpectCommands(ev.expect)
		} else {
			sink.target.Notify(ev.note)
		}
	}
	close(sink.done)
}

// ExpectCommands is part of interface Renderer.
func (sink *AsyncSink) ExpectCommands(n int) {
	sink.events <- event{expect: n, isHint: true}
}

// Notify is part of interface Renderer.
func (sink *AsyncSink) Notify(note Notification) {
	sink.events <- event{note: note}
}

// Close stops accepting notifications and waits until every pending
// notification has been forwarded. Calling Close more than once is safe.
func (sink *AsyncSink) Close() error {
	sink.once.Do(func() {
		close(sink.events)
	})
	<-sink.done
	return nil
}
