package testing

import (
	"context"
	"log/slog"
	"sync"
)

type (
	// SlogHandler records every log entry it receives so that tests can
	// inspect what a component logged
	SlogHandler struct {
		log      *recordLog
		attrs    []slog.Attr
		minLevel slog.Leveler
	}

	// Entry is a recorded log message along with its flattened attributes
	Entry struct {
		Message string
		Level   slog.Level
		Attrs   map[string]slog.Value
	}

	recordLog struct {
		entries []Entry
		mu      sync.Mutex
	}
)

// NewSlogHandler returns a SlogHandler that records messages at debug level
// and above
func NewSlogHandler() *SlogHandler {
	return &SlogHandler{
		log:      &recordLog{},
		minLevel: slog.LevelDebug,
	}
}

// Logger returns a Logger that writes to the SlogHandler
func (h *SlogHandler) Logger() *slog.Logger {
	return slog.New(h)
}

// Entries returns a copy of everything recorded so far
func (h *SlogHandler) Entries() []Entry {
	h.log.mu.Lock()
	defer h.log.mu.Unlock()
	res := make([]Entry, len(h.log.entries))
	copy(res, h.log.entries)
	return res
}

// Messages returns the recorded messages, in order
func (h *SlogHandler) Messages() []string {
	entries := h.Entries()
	res := make([]string, len(entries))
	for i, e := range entries {
		res[i] = e.Message
	}
	return res
}

// Reset discards everything recorded so far
func (h *SlogHandler) Reset() {
	h.log.mu.Lock()
	defer h.log.mu.Unlock()
	h.log.entries = nil
}

func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel.Level()
}

func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	e := Entry{
		Message: r.Message,
		Level:   r.Level,
		Attrs:   make(map[string]slog.Value, len(h.attrs)+r.NumAttrs()),
	}
	for _, a := range h.attrs {
		e.Attrs[a.Key] = a.Value
	}
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs[a.Key] = a.Value
		return true
	})

	h.log.mu.Lock()
	defer h.log.mu.Unlock()
	h.log.entries = append(h.log.entries, e)
	return nil
}

func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := *h
	res.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &res
}

func (h *SlogHandler) WithGroup(_ string) slog.Handler {
	return h
}
