package cleanup

import (
	"sync"
)

type mockLogger struct {
	mu   sync.Mutex
	logs []struct {
		level   string
		message string
		err     error
	}
}

func (m *mockLogger) Log(level, message string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, struct {
		level   string
		message string
		err     error
	}{level, message, err})
}

type mockReporter struct {
	messages []string
	closed   bool
}

func (m *mockReporter) Report(message string) {
	m.messages = append(m.messages, message)
}

func (m *mockReporter) Close() error {
	m.closed = true
	return nil
}
