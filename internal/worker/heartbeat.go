package worker

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Heartbeat is one liveness report. Workers emit these as newline-delimited
// JSON on stdout; the supervising manager parses them from the process pipe.
// Logs go to stderr, so stdout carries nothing else.
type Heartbeat struct {
	WorkerID      string    `json:"worker_id"`
	JobsProcessed uint64    `json:"jobs_processed"`
	SentAt        time.Time `json:"sent_at"`
}

// HeartbeatWriter serializes heartbeats onto a single writer.
type HeartbeatWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewHeartbeatWriter wraps w, typically os.Stdout.
func NewHeartbeatWriter(w io.Writer) *HeartbeatWriter {
	return &HeartbeatWriter{enc: json.NewEncoder(w)}
}

// Emit writes one heartbeat line.
func (h *HeartbeatWriter) Emit(hb Heartbeat) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.enc.Encode(hb); err != nil {
		return fmt.Errorf("emit heartbeat: %w", err)
	}
	return nil
}

// ParseHeartbeat decodes one heartbeat line as written by Emit.
func ParseHeartbeat(line []byte) (Heartbeat, error) {
	var hb Heartbeat
	if err := json.Unmarshal(line, &hb); err != nil {
		return Heartbeat{}, fmt.Errorf("parse heartbeat: %w", err)
	}
	if hb.WorkerID == "" {
		return Heartbeat{}, fmt.Errorf("parse heartbeat: missing worker id")
	}
	return hb, nil
}
