package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Confirm asks a yes/no question and reports whether the answer was yes.
// An empty answer or end of input counts as no.
func Confirm(ctx context.Context, r io.Reader, w io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprint(w, FormatPrompt(question+" [y/N]")); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		value, err := bufio.NewReader(r).ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine finishes on its own once input arrives
		return false, ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", res.err)
		}
		switch strings.ToLower(strings.TrimSpace(res.value)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}
