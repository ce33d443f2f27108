package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{"Empty input returns default", "", 2, 1, 1},
		{"Valid choice within range", "2", 2, 1, 2},
		{"Choice below minimum returns default", "0", 2, 1, 1},
		{"Choice above maximum returns default", "3", 2, 1, 1},
		{"Non-numeric returns default", "abc", 2, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestReadLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  hello  \nworld"))

	assert.Equal(t, "hello", readLine(reader))
	assert.Equal(t, "world", readLine(reader))
	assert.Equal(t, "", readLine(reader))
}

func TestReadInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(" keep spaces \r\nlast"))

	line, err := readInput(reader)
	require.NoError(t, err)
	assert.Equal(t, " keep spaces ", line)

	line, err = readInput(reader)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = readInput(reader)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadSecret_NotATerminal(t *testing.T) {
	in := strings.NewReader("math123\n")

	secret, hidden, err := readSecret(in, bufio.NewReader(in))

	require.NoError(t, err)
	assert.False(t, hidden)
	assert.Equal(t, "math123", secret)
}

func TestReadSecret_Terminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	origIsTerminal, origRead := isTerminal, readPasswordFunc
	t.Cleanup(func() {
		isTerminal = origIsTerminal
		readPasswordFunc = origRead
	})
	isTerminal = func(int) bool { return true }
	readPasswordFunc = func(int) ([]byte, error) { return []byte("hidden-secret"), nil }

	secret, hidden, err := readSecret(r, bufio.NewReader(r))

	require.NoError(t, err)
	assert.True(t, hidden)
	assert.Equal(t, "hidden-secret", secret)
}

func TestReadSecret_TerminalErrorFallsBack(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	origIsTerminal, origRead := isTerminal, readPasswordFunc
	t.Cleanup(func() {
		isTerminal = origIsTerminal
		readPasswordFunc = origRead
	})
	isTerminal = func(int) bool { return true }
	readPasswordFunc = func(int) ([]byte, error) { return nil, errors.New("not a tty") }

	_, err = w.WriteString("typed\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	secret, hidden, err := readSecret(r, bufio.NewReader(r))

	require.NoError(t, err)
	assert.False(t, hidden)
	assert.Equal(t, "typed", secret)
}
