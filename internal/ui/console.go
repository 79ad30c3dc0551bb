package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console implements Service without a display: the file path is read from
// standard input and notifications go to the output writer. Used for
// --no-gui runs and headless environments.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console UI reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// SelectFile prompts for a path on standard input. An empty line means the
// user declined.
func (c *Console) SelectFile(title string, patterns []string) (string, error) {
	fmt.Fprintf(c.out, "%s (%s): ", title, strings.Join(patterns, ", "))

	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ShowSuccess prints a success notice.
func (c *Console) ShowSuccess(title, message string) {
	fmt.Fprintf(c.out, "\n[%s] %s\n", title, message)
}

// ShowError prints an error notice.
func (c *Console) ShowError(title, message string) {
	fmt.Fprintf(c.out, "\n[%s] %s\n", title, message)
}

// ShowInfo prints an informational notice.
func (c *Console) ShowInfo(title, message string) {
	fmt.Fprintf(c.out, "\n[%s] %s\n", title, message)
}
