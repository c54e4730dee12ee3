package logger

import (
	"sync"
	"testing"
)

// TestLogger forwards log output to the test runner so it shows up only for
// failing tests.
type TestLogger struct {
	T      *testing.T
	fields map[string]interface{}
}

func NewTestLogger(t *testing.T) Logger {
	return &TestLogger{T: t}
}

func (l *TestLogger) log(level, msg string) {
	if l.T != nil {
		if len(l.fields) > 0 {
			l.T.Logf("[%s] %s %v", level, msg, l.fields)
			return
		}
		l.T.Logf("[%s] %s", level, msg)
	}
}

func (l *TestLogger) Debug(msg string) { l.log("DEBUG", msg) }
func (l *TestLogger) Info(msg string)  { l.log("INFO", msg) }
func (l *TestLogger) Warn(msg string)  { l.log("WARN", msg) }
func (l *TestLogger) Error(msg string) { l.log("ERROR", msg) }
func (l *TestLogger) Fatal(msg string) { l.log("FATAL", msg) }

func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &TestLogger{T: l.T, fields: merged}
}

// Entry is one captured log call.
type Entry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// RecordingLogger captures log calls for assertions. Safe for concurrent
// use; WithField chains share the same capture buffer.
type RecordingLogger struct {
	mu      *sync.Mutex
	entries *[]Entry
	fields  map[string]interface{}
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{
		mu:      &sync.Mutex{},
		entries: &[]Entry{},
	}
}

func (l *RecordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fields := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	*l.entries = append(*l.entries, Entry{Level: level, Message: msg, Fields: fields})
}

func (l *RecordingLogger) Debug(msg string) { l.record("debug", msg) }
func (l *RecordingLogger) Info(msg string)  { l.record("info", msg) }
func (l *RecordingLogger) Warn(msg string)  { l.record("warn", msg) }
func (l *RecordingLogger) Error(msg string) { l.record("error", msg) }
func (l *RecordingLogger) Fatal(msg string) { l.record("fatal", msg) }

func (l *RecordingLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

func (l *RecordingLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &RecordingLogger{mu: l.mu, entries: l.entries, fields: merged}
}

// Entries returns a snapshot of everything logged so far.
func (l *RecordingLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(*l.entries))
	copy(out, *l.entries)
	return out
}

// NewMockLogger returns a logger that discards output, or forwards it to the
// given test when one is passed.
func NewMockLogger(t ...*testing.T) Logger {
	if len(t) > 0 {
		return NewTestLogger(t[0])
	}
	return NewTestLogger(nil)
}
