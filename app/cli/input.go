package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// prompt prints label and reads one line, trimming the trailing newline
// only. Login and password values are otherwise passed through untouched.
func (c *CLI) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptInt reads a menu choice. Unparseable input returns -1, which no
// menu maps to.
func (c *CLI) promptInt(label string) (int, error) {
	line, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, nil
	}
	return n, nil
}

// promptPassword reads a password without echoing it when stdin is a
// terminal. Piped input (tests, scripts) falls back to a plain line read.
func (c *CLI) promptPassword(label string) (string, error) {
	fmt.Fprint(c.out, label)

	if f, ok := c.rawIn.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(c.out)
			if err != nil {
				return "", err
			}
			return string(b), nil
		}
	}

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newReader(r io.Reader) *bufio.Reader {
	return bufio.NewReader(r)
}
