package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"frontdesk/internal/domain/service"
)

// Console is the terminal presenter: transient notifications on the output
// stream and y/N confirmations on the input stream.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewNotifier exposes the console as the notification collaborator.
func NewNotifier(c *Console) service.Notifier {
	return c
}

// NewPrompter exposes the console as the confirmation collaborator.
func NewPrompter(c *Console) service.Prompter {
	return c
}

// Success prints a transient success notification.
func (c *Console) Success(message string) {
	fmt.Fprintf(c.out, "[ok] %s\n", message)
}

// Error prints a transient failure notification.
func (c *Console) Error(message string) {
	fmt.Fprintf(c.out, "[error] %s\n", message)
}

// Confirm asks a yes/no question; anything but an explicit yes declines.
func (c *Console) Confirm(message string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", message)

	answer, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}

	return false
}

// ReadLine reads one trimmed input line.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Printf writes formatted output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
