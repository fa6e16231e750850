package clipboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"clipmon/internal/apperrors"
	"clipmon/internal/util"
)

type Options struct {
	Interval    time.Duration
	CheckURLs   bool
	MaxItemSize int // 0 disables the limit

	// OnEvent is called synchronously from the polling loop.
	OnEvent func(MonitorEvent)
}

// Monitor polls a Reader and hands new content to a Store. It owns the
// store for the duration of Run and closes it on exit.
type Monitor struct {
	reader  Reader
	store   Store
	seen    *DedupSet
	opts    Options
	session string
}

func NewMonitor(reader Reader, store Store, opts Options) *Monitor {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	return &Monitor{
		reader:  reader,
		store:   store,
		seen:    NewDedupSet(),
		opts:    opts,
		session: uuid.NewString(),
	}
}

// Seed marks contents as already seen without offering them to the store.
// It must be called before Run.
func (m *Monitor) Seed(contents []string) {
	for _, c := range contents {
		m.seen.Add(c)
	}
}

func (m *Monitor) Session() string {
	return m.session
}

// Run polls until ctx is cancelled. Cancellation is checked between ticks,
// so an in-flight store write always completes. The only error returned is
// a clipboard failure; store failures are reported as events.
func (m *Monitor) Run(ctx context.Context) error {
	defer func() {
		if err := m.store.Close(); err != nil {
			log.Printf("Failed to close store: %v", err)
		}
	}()

	log.Printf("Clipboard monitor started (session %s, interval %s, urls only: %t)",
		m.session, m.opts.Interval, m.opts.CheckURLs)

	ticker := time.NewTicker(m.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Clipboard monitor stopped (session %s, %d seen)", m.session, m.seen.Len())
			return nil
		default:
		}

		if err := m.checkClipboard(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}

func (m *Monitor) checkClipboard(ctx context.Context) error {
	content, err := m.reader.Read()
	if err != nil {
		return apperrors.New(apperrors.KindClipboard, "failed to read clipboard", err)
	}
	if content == "" {
		return nil
	}

	m.processClipboardData(ctx, &ClipboardData{
		Content:   content,
		Size:      len(content),
		Timestamp: time.Now(),
	})
	return nil
}

func (m *Monitor) processClipboardData(ctx context.Context, data *ClipboardData) {
	if m.opts.MaxItemSize > 0 && data.Size > m.opts.MaxItemSize {
		log.Printf("Clipboard item too large: %d bytes (max: %d)", data.Size, m.opts.MaxItemSize)
		m.emit(MonitorEvent{Type: EventRejected, Data: data})
		return
	}

	if m.opts.CheckURLs && !util.IsURL(data.Content) {
		m.emit(MonitorEvent{Type: EventRejected, Data: data})
		return
	}

	if m.seen.Contains(data.Content) {
		m.emit(MonitorEvent{Type: EventDuplicate, Data: data})
		return
	}

	// Marked seen before the write: a failed write is not retried.
	m.seen.Add(data.Content)

	inserted, err := m.store.InsertIfNew(ctx, data.Content)
	if err != nil {
		log.Printf("Failed to save clipboard item: %v", err)
		m.emit(MonitorEvent{
			Type:  EventError,
			Data:  data,
			Error: fmt.Errorf("content not persisted: %w", err),
		})
		return
	}

	m.emit(MonitorEvent{
		Type:     EventNewItem,
		Data:     data,
		Inserted: inserted,
	})
}

func (m *Monitor) emit(ev MonitorEvent) {
	if m.opts.OnEvent == nil {
		return
	}
	ev.Session = m.session
	m.opts.OnEvent(ev)
}
