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

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The line is trimmed. If EOF occurs after some input was read, the partial
// line is returned.
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

// optionalText prompts for a value that may be skipped with an empty line;
// skipped values come back as nil.
func optionalText(reader *bufio.Reader, prompt string, w io.Writer) (*string, error) {
	v, err := getSimpleText(reader, prompt+" (Enter to skip)", w)
	if err != nil || v == "" {
		return nil, err
	}
	return &v, nil
}

func optionalFloat(reader *bufio.Reader, prompt string, w io.Writer) (*float64, error) {
	v, err := optionalText(reader, prompt, w)
	if err != nil || v == nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", *v)
	}
	return &f, nil
}

// optionalList reads a comma separated list; blanks around items are dropped.
func optionalList(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	v, err := optionalText(reader, prompt+", comma separated", w)
	if err != nil || v == nil {
		return nil, err
	}
	return splitList(*v), nil
}

func splitList(s string) []string {
	items := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// lineReader hands out at most one line per Read, so a Scanner on top of it
// leaves the rest of the input in r for the prompts that share it.
type lineReader struct {
	r *bufio.Reader
}

func (l lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := l.r.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}
	return n, nil
}
