package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type terminalPrompt struct {
	in  *os.File
	out io.Writer

	// lines serves piped input when in is not a terminal.
	lines *bufio.Reader
}

// NewTerminalPrompt reads passwords from in. On a terminal echo is turned
// off; otherwise one line is read from lines per prompt. lines should be the
// reader the shell reads commands from, so piped input is consumed in order.
func NewTerminalPrompt(in *os.File, lines *bufio.Reader, out io.Writer) PasswordPrompt {
	return &terminalPrompt{in: in, out: out, lines: lines}
}

func (p *terminalPrompt) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := p.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
