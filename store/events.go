package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"gridlearn/grid"
)

// Event is one line of the round log. It is never read back by the agent.
type Event struct {
	Timestamp         time.Time  `json:"timestamp"`
	Session           uuid.UUID  `json:"session"`
	RoundIndex        int        `json:"roundIndex"`
	GuessedLocation   grid.Point `json:"guessedLocation"`
	TrueLocation      grid.Point `json:"trueLocation"`
	ManhattanDistance int        `json:"manhattanDistance"`
	Explored          bool       `json:"explored"`
	Epsilon           float64    `json:"epsilon"`
}

// EventLog appends events as JSON lines.
type EventLog struct {
	mu      sync.Mutex
	f       *os.File
	encoder *json.Encoder
	session uuid.UUID
	now     func() time.Time
}

func OpenEventLog(path string, session uuid.UUID) (*EventLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	return &EventLog{
		f:       f,
		encoder: json.NewEncoder(f),
		session: session,
		now:     time.Now,
	}, nil
}

func (l *EventLog) Session() uuid.UUID {
	return l.session
}

// Append stamps e with the session and, if unset, the current UTC time.
func (l *EventLog) Append(e Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}
	e.Timestamp = e.Timestamp.UTC()
	e.Session = l.session
	if err := l.encoder.Encode(e); err != nil {
		return fmt.Errorf("failed to append round %d: %w", e.RoundIndex, err)
	}
	return nil
}

func (l *EventLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
