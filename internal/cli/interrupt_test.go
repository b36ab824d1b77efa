package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestNewInterruptHandler(t *testing.T) {
	handler := NewInterruptHandler(nil, "")
	assert.NotNil(t, handler.writer)
	assert.Equal(t, "Interrupted!", handler.message)
	assert.False(t, handler.WasInterrupted())
}

func TestInterruptHandler_Trigger(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output, "Save interrupted!")

	ctx, stop := handler.HandleInterrupts(context.Background())
	defer stop()

	handler.trigger()
	handler.trigger()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled")
	}

	assert.True(t, handler.WasInterrupted())
	assert.Equal(t, 1, bytes.Count([]byte(output.String()), []byte("Save interrupted!")))
}

func TestInterruptHandler_Stop(t *testing.T) {
	handler := NewInterruptHandler(&syncBuffer{}, "bye")
	ctx, stop := handler.HandleInterrupts(context.Background())
	stop()

	<-ctx.Done()
	assert.False(t, handler.WasInterrupted())
}
