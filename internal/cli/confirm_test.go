package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"full yes", " YES \n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"end of input", "", false},
		{"no newline", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(context.Background(), strings.NewReader(tt.input), &out, "Reset identities?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Reset identities? [y/N]")
		})
	}
}

func TestConfirm_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A pipe that never delivers input
	r, w := io.Pipe()
	defer func() { _ = w.Close() }()

	_, err := Confirm(ctx, r, io.Discard, "Continue?")
	assert.ErrorIs(t, err, ErrInputCancelled)
}
