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

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// StdinIsTerminal reports whether standard input is attached to a terminal.
func StdinIsTerminal() bool {
	return isTerminal(int(os.Stdin.Fd()))
}

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The surrounding whitespace is trimmed. If EOF occurs after some input was read,
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

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered (i.e., the user presses Enter twice). The trailing newline
// on each line is trimmed and the collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetConfirmation asks a yes/no question. Empty input yields def.
func GetConfirmation(reader *bufio.Reader, prompt string, def bool, w io.Writer) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		s, err := GetSimpleText(reader, fmt.Sprintf("%s (%s)", prompt, hint), w)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "":
			return def, nil
		case "y", "yes", "s", "sim":
			return true, nil
		case "n", "no", "nao", "não":
			return false, nil
		}
		fmt.Fprintln(w, "Please answer y or n")
	}
}

// The ask helpers prompt for one field showing its current value. Empty
// input keeps the current value and yields nil; invalid numbers are asked
// again.

func askString(reader *bufio.Reader, w io.Writer, label, current string) (*string, error) {
	s, err := GetSimpleText(reader, withCurrent(label, current), w)
	if err != nil || s == "" {
		return nil, err
	}
	return &s, nil
}

func askFloat(reader *bufio.Reader, w io.Writer, label string, current float64) (*float64, error) {
	for {
		s, err := GetSimpleText(reader, withCurrent(label, strconv.FormatFloat(current, 'f', -1, 64)), w)
		if err != nil || s == "" {
			return nil, err
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err == nil && v >= 0 {
			return &v, nil
		}
		fmt.Fprintln(w, "Please enter a non-negative number")
	}
}

func askInt(reader *bufio.Reader, w io.Writer, label string, current int) (*int, error) {
	for {
		s, err := GetSimpleText(reader, withCurrent(label, strconv.Itoa(current)), w)
		if err != nil || s == "" {
			return nil, err
		}
		v, err := strconv.Atoi(s)
		if err == nil && v >= 0 {
			return &v, nil
		}
		fmt.Fprintln(w, "Please enter a non-negative whole number")
	}
}

func withCurrent(label, current string) string {
	if current == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, current)
}
