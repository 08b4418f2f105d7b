// Package term implements the session console on the process TTY. Raw-mode
// key reads, masked password entry, and glamour-rendered markdown output
// all live here; nothing above this package touches the terminal.
package term

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	xterm "golang.org/x/term"

	"github.com/devinhero/ledgers/session"
)

// Terminal implements session.Console.
type Terminal struct {
	in       *os.File
	out      *os.File
	reader   *bufio.Reader
	renderer *glamour.TermRenderer
}

// New opens a console on stdin/stdout.
func New() (*Terminal, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Terminal{
		in:       os.Stdin,
		out:      os.Stdout,
		reader:   bufio.NewReader(os.Stdin),
		renderer: renderer,
	}, nil
}

// ReadLine reads one line, without the trailing newline.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword reads one line with echo disabled.
func (t *Terminal) ReadPassword() (string, error) {
	password, err := xterm.ReadPassword(int(t.in.Fd()))
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return string(password), nil
}

// ReadKey reads a single key press in raw mode. Arrow keys arrive as ESC [
// C/D sequences and map to the session's Key codes.
func (t *Terminal) ReadKey() (session.Key, error) {
	fd := int(t.in.Fd())
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer xterm.Restore(fd, state)

	buf := make([]byte, 3)
	n, err := t.in.Read(buf)
	if err != nil {
		return 0, err
	}

	if n >= 3 && buf[0] == 0x1b && buf[1] == '[' {
		switch buf[2] {
		case 'D':
			return session.KeyLeft, nil
		case 'C':
			return session.KeyRight, nil
		}
	}
	if buf[0] == 0x03 {
		return session.KeyInterrupt, nil
	}
	return session.Key(buf[0]), nil
}

// Clear wipes the screen and homes the cursor.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, "\x1b[2J\x1b[H")
}

// WriteLine prints one line of plain text.
func (t *Terminal) WriteLine(text string) {
	fmt.Fprintln(t.out, text)
}

// WriteMarkdown renders a markdown fragment, falling back to the raw source
// if rendering fails.
func (t *Terminal) WriteMarkdown(markdown string) {
	out, err := t.renderer.Render(markdown)
	if err != nil {
		fmt.Fprint(t.out, markdown)
		return
	}
	fmt.Fprint(t.out, out)
}
