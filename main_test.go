package deprecate

import "sync"

// recordingEmitter captures emissions for assertions. Safe for concurrent use.
type recordingEmitter struct {
	mu     sync.Mutex
	events []emitted
}

type emitted struct {
	message string
	kind    string
	depth   int
}

func (r *recordingEmitter) Emit(message string, kind string, depth int) {
	r.mu.Lock()
	r.events = append(r.events, emitted{message: message, kind: kind, depth: depth})
	r.mu.Unlock()
}

func (r *recordingEmitter) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.message
	}
	return out
}

func (r *recordingEmitter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// panicEmitter always panics; used to verify emission is best-effort.
type panicEmitter struct{}

func (panicEmitter) Emit(string, string, int) { panic("emission channel unavailable") }
