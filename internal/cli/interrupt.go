package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler manages graceful shutdown with friendly messages.
type InterruptHandler struct {
	writer      io.Writer
	cancelFunc  context.CancelFunc
	message     string
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler. The message is shown
// once when the first interrupt arrives.
func NewInterruptHandler(writer io.Writer, message string) *InterruptHandler {
	if writer == nil {
		writer = os.Stdout
	}
	if message == "" {
		message = "Interrupted!"
	}
	return &InterruptHandler{
		writer:  writer,
		message: message,
	}
}

// HandleInterrupts sets up signal handling and returns a context that will be canceled on interrupt.
// The returned stop function releases the signal handler.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	h.cancelFunc = cancel

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			h.trigger()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}

func (h *InterruptHandler) trigger() {
	h.mu.Lock()
	if !h.interrupted {
		h.interrupted = true
		msg := "\n" + FormatWarning(h.message) + "\n"
		if _, err := fmt.Fprint(h.writer, msg); err != nil {
			// Best effort - we're shutting down anyway
			fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
		}
	}
	h.mu.Unlock()

	if h.cancelFunc != nil {
		h.cancelFunc()
	}
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
