// Package activity implements the append-only activity log shown next to the
// result grid. Entries are never removed, reordered or deduplicated.
package activity

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/image-searcher/internal/model"
)

// Log is an ordered, append-only sequence of entries
type Log struct {
	mu          sync.Mutex
	entries     []model.LogEntry
	subscribers []func(model.LogEntry)
	logger      logrus.FieldLogger
	now         func() time.Time
}

// NewLog creates an empty activity log mirroring each entry to logger
func NewLog(logger logrus.FieldLogger) *Log {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Log{
		logger: logger,
		now:    time.Now,
	}
}

// Append adds one line. Subscribers see entries in append order.
func (l *Log) Append(line string) model.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := model.LogEntry{
		Seq:  uint64(len(l.entries)) + 1,
		Time: l.now(),
		Text: line,
	}
	l.entries = append(l.entries, entry)

	l.logger.WithField("seq", entry.Seq).Info(line)

	// Delivered under the lock so concurrent appends never reach an observer out of order
	for _, fn := range l.subscribers {
		fn(entry)
	}

	return entry
}

// Appendf formats and appends one line
func (l *Log) Appendf(format string, args ...any) model.LogEntry {
	return l.Append(fmt.Sprintf(format, args...))
}

// Entries returns a snapshot of all entries
func (l *Log) Entries() []model.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Lines returns the text of all entries
func (l *Log) Lines() []string {
	entries := l.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Text
	}
	return lines
}

// Len returns the number of entries
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Subscribe registers fn for every future entry. Subscribers must not call
// back into the log.
func (l *Log) Subscribe(fn func(model.LogEntry)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.subscribers = append(l.subscribers, fn)
	l.mu.Unlock()
}
