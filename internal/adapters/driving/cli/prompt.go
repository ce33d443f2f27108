package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Mockable terminal hooks.
var (
	isTerminal       = term.IsTerminal
	readPasswordFunc = term.ReadPassword
)

// readLine returns the next trimmed line, ignoring read errors.
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readInput returns the next line without its line ending.
// io.EOF is returned only when the input is exhausted and nothing was read.
func readInput(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimRight(input, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(input, "\r\n"), nil
}

// readSecret reads a secret without echo when in is a terminal,
// otherwise it falls back to a plain line read.
func readSecret(in io.Reader, reader *bufio.Reader) (string, bool, error) {
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		secret, err := readPasswordFunc(int(f.Fd()))
		if err == nil {
			return string(secret), true, nil
		}
	}
	secret, err := readInput(reader)
	return secret, false, err
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
