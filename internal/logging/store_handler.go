package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/google/uuid"
)

const (
	logsCollection = "system_logs"
	batchSize      = 50
	flushInterval  = 5 * time.Second
	writeTimeout   = 10 * time.Second
)

// StoreHandler persists ERROR and above records to the document store
// so operational failures survive process restarts. Records are
// buffered and flushed in the background to keep logging off the
// request path.
type StoreHandler struct {
	store docstore.Store

	mu     sync.Mutex
	buffer []docstore.Document

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewStoreHandler(store docstore.Store) *StoreHandler {
	h := &StoreHandler{
		store:  store,
		buffer: make([]docstore.Document, 0, batchSize),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *StoreHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *StoreHandler) Handle(_ context.Context, record slog.Record) error {
	doc := docstore.Document{
		"_id":       uuid.New().String(),
		"timestamp": record.Time.UTC().Format(time.RFC3339Nano),
		"level":     record.Level.String(),
		"message":   record.Message,
	}

	extra := map[string]any{}
	record.Attrs(func(attr slog.Attr) bool {
		switch attr.Key {
		case "error", "method", "path", "status", "request_id":
			doc[attr.Key] = attr.Value.String()
		default:
			extra[attr.Key] = attr.Value.Any()
		}
		return true
	})
	if len(extra) > 0 {
		doc["extra"] = extra
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, doc)
	full := len(h.buffer) >= batchSize
	h.mu.Unlock()

	if full {
		h.flush()
	}
	return nil
}

func (h *StoreHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *StoreHandler) WithGroup(_ string) slog.Handler { return h }

// Stop flushes any buffered records and ends the background loop.
func (h *StoreHandler) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
		<-h.done
		h.flush()
	})
}

func (h *StoreHandler) flushLoop() {
	defer close(h.done)
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.flush()
		case <-h.stop:
			return
		}
	}
}

func (h *StoreHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]docstore.Document, 0, batchSize)
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	for _, doc := range batch {
		// Failed writes are dropped; reporting them would re-enter the
		// handler chain.
		_, _ = h.store.InsertOne(ctx, logsCollection, doc)
	}
}
