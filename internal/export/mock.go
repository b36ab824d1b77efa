package export

import (
	"context"
	"sync"

	"github.com/Veraticus/buybox-master/internal/service"
)

// MockWriter is a mock implementation of service.ReportWriter for testing.
type MockWriter struct {
	WriteFunc  func(ctx context.Context, report service.Report) error
	LastReport *service.Report
	WriteCalls int
	mu         sync.Mutex
}

// NewMockWriter creates a new mock writer.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// Write implements the ReportWriter interface.
func (m *MockWriter) Write(ctx context.Context, report service.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCalls++
	m.LastReport = &report

	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, report)
	}
	return nil
}

// Calls returns the number of Write invocations.
func (m *MockWriter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.WriteCalls
}
