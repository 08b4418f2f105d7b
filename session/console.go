package session

// Key is one key press. Printable keys carry their rune; special keys use
// the negative codes below.
type Key rune

const (
	// KeyLeft is the left arrow, "older" while viewing history.
	KeyLeft Key = -1
	// KeyRight is the right arrow, "newer" while viewing history.
	KeyRight Key = -2
	// KeyInterrupt is Ctrl-C.
	KeyInterrupt Key = -3
)

// Console is the terminal the Flow drives. The session layer never touches
// the process TTY directly, so tests can script a whole session.
type Console interface {
	// ReadLine reads one line of input, without the trailing newline.
	ReadLine() (string, error)
	// ReadPassword reads one line with echo disabled.
	ReadPassword() (string, error)
	// ReadKey reads a single key press without waiting for enter.
	ReadKey() (Key, error)
	// Clear wipes the screen.
	Clear()
	// WriteLine prints one line of plain text.
	WriteLine(text string)
	// WriteMarkdown renders a markdown fragment to the screen.
	WriteMarkdown(markdown string)
}
