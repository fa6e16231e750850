package clipboard

import (
	"context"
	"time"
)

// Reader returns the current clipboard text, trimmed. An empty string means
// the clipboard is empty, holds non-text data, or has no value. Errors are
// reserved for unexpected platform failures.
type Reader interface {
	Read() (string, error)
}

// Store persists clipboard content. InsertIfNew reports whether the content
// was newly stored; an existing value is not an error.
type Store interface {
	InsertIfNew(ctx context.Context, content string) (bool, error)
	Close() error
}

type ClipboardData struct {
	Content string
	Size    int

	Timestamp time.Time
}

type EventType string

const (
	EventNewItem   EventType = "new_item"
	EventRejected  EventType = "rejected"
	EventDuplicate EventType = "duplicate"
	EventError     EventType = "error"
)

type MonitorEvent struct {
	Type    EventType
	Session string
	Data    *ClipboardData
	// Inserted is false for a new item the store already held.
	Inserted bool
	Error    error
}
