package event

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

// DeadLetterSchemaVersion tags each line of the dead-letter file. Bump it
// when DeadLetterEntry changes shape.
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one undeliverable event, stored as a JSON line
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends entries to a JSONL file
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead-letter file %s: %w", path, err)
	}
	return &DeadLetterWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// Write records evt after its last failed attempt
func (dlw *DeadLetterWriter) Write(evt Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now().UTC(),
		Event:         evt,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	logger.Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"attempts", attempts,
		"error", entry.LastError)

	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	if err := dlw.enc.Encode(entry); err != nil {
		return fmt.Errorf("failed to write dead-letter entry: %w", err)
	}
	return nil
}

func (dlw *DeadLetterWriter) Close() error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	return dlw.file.Close()
}

// ReadDeadLetters loads every entry in a dead-letter file. A missing file
// holds no entries. Lines that do not parse are skipped and counted.
func ReadDeadLetters(path string) (entries []DeadLetterEntry, skipped int, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open dead-letter file %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), DeadLetterMaxLineBytes)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var entry DeadLetterEntry
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	if err := sc.Err(); err != nil {
		return entries, skipped, fmt.Errorf("failed to read dead-letter file %s: %w", path, err)
	}
	return entries, skipped, nil
}
