package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errInvalidInput marks input that failed validation. Unlike reader errors,
// the caller may ask again.
var errInvalidInput = errors.New("invalid input")

// promptText reads one line with the app's reader.
func (a *App) promptText(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, os.Stdout)
}

// promptTextDefault reads one line, falling back to def on empty input.
func (a *App) promptTextDefault(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	text, err := a.promptText(prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return def, nil
	}
	return text, nil
}

// promptInt reads one line and parses it as a positive integer.
func (a *App) promptInt(prompt string) (int64, error) {
	text, err := a.promptText(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: expected a positive number, got %q", errInvalidInput, text)
	}
	return n, nil
}

// promptOptionalInt reads one line and parses it as a positive integer;
// empty input yields nil.
func (a *App) promptOptionalInt(prompt string) (*int64, error) {
	text, err := a.promptText(prompt + " (empty for all)")
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: expected a positive number, got %q", errInvalidInput, text)
	}
	return &n, nil
}

// promptOption reads a single option letter (A-D), uppercased. Empty input
// returns "" so callers can treat it as a skip.
func (a *App) promptOption(prompt string) (string, error) {
	text, err := a.promptText(prompt)
	if err != nil {
		return "", err
	}
	letter := strings.ToUpper(strings.TrimSpace(text))
	switch letter {
	case "", "A", "B", "C", "D":
		return letter, nil
	}
	return "", fmt.Errorf("%w: expected one of A, B, C, D, got %q", errInvalidInput, text)
}
