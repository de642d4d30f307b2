// Package console is the line-oriented front end of the tracker: a prompter that asks
// for one line of input at a time and shows reports, and the menu-driven shell built on it.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrQuit is returned by a Prompter when the user asks to leave the program or input ends.
var ErrQuit = errors.New("quit requested")

// QuitCommand typed at any prompt leaves the shell.
const QuitCommand = ":q"

// Prompter is the input/display collaborator used by the shell.
type Prompter interface {
	// Prompt asks for one line. ok is false when the user entered a blank line, which
	// callers treat as cancel or keep-current-value.
	Prompt(label string) (text string, ok bool, err error)
	// Display shows lines and waits for the user to acknowledge them.
	Display(lines ...string) error
}

// Terminal is a Prompter over a reader and a writer, usually stdin and stdout.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Prompt writes label and reads one line.
func (t *Terminal) Prompt(label string) (string, bool, error) {
	if _, err := fmt.Fprintf(t.out, "%s ", label); err != nil {
		return "", false, err
	}

	line, err := t.readLine()
	if err != nil {
		return "", false, err
	}
	if line == QuitCommand {
		return "", false, ErrQuit
	}
	text := strings.TrimSpace(line)
	if text == "" {
		return "", false, nil
	}
	return text, true, nil
}

// Display writes lines and waits for Enter. End of input counts as acknowledgment.
func (t *Terminal) Display(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(t.out, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(t.out, "Press Enter to continue..."); err != nil {
		return err
	}

	if _, err := t.readLine(); err != nil && !errors.Is(err, ErrQuit) {
		return err
	}
	_, err := fmt.Fprintln(t.out)
	return err
}

// readLine returns the next line without its terminator. A final line without a newline
// is still returned; ErrQuit signals that nothing is left.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrQuit
			}
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ScriptedPrompter replays canned answers and records what was displayed.
type ScriptedPrompter struct {
	Answers []string
	Labels  []string
	Shown   [][]string
}

// Prompt returns the next answer, or ErrQuit when the script is exhausted.
func (s *ScriptedPrompter) Prompt(label string) (string, bool, error) {
	s.Labels = append(s.Labels, label)
	if len(s.Answers) == 0 {
		return "", false, ErrQuit
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	if answer == QuitCommand {
		return "", false, ErrQuit
	}
	answer = strings.TrimSpace(answer)
	return answer, answer != "", nil
}

// Display records the lines.
func (s *ScriptedPrompter) Display(lines ...string) error {
	s.Shown = append(s.Shown, lines)
	return nil
}

// Output returns everything displayed so far, one line per entry.
func (s *ScriptedPrompter) Output() string {
	var b strings.Builder
	for _, lines := range s.Shown {
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
