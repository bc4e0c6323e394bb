package events

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/rs/xid"
)

// Event represents a single NDJSON record for worker-friendly logs.
type Event struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Run       string                 `json:"run,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Emitter writes NDJSON events to an io.Writer safely across goroutines.
// Every event carries the run identifier assigned when the emitter was built,
// so a report file can be correlated with its event stream.
type Emitter struct {
	writer io.Writer
	run    string
	mu     sync.Mutex
}

// NewEmitter returns a new NDJSON emitter with a fresh run identifier.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{writer: w, run: xid.New().String()}
}

// Run returns the identifier stamped onto every emitted event.
func (e *Emitter) Run() string {
	return e.run
}

// Emit serializes the event to JSON and appends a newline.
func (e *Emitter) Emit(evt Event) error {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	if evt.Run == "" {
		evt.Run = e.run
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.writer.Write(append(payload, '\n')); err != nil {
		return err
	}

	return nil
}
