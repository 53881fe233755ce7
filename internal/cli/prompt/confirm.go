// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer asks yes/no questions. Answers default to no; EOF and read
// errors count as no, so a closed stdin never confirms anything.
//
// A Confirmer reads through a single buffered reader, so one instance can
// ask any number of questions against the same input stream.
type Confirmer struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewConfirmer creates a Confirmer using stdin and stdout.
func NewConfirmer() *Confirmer {
	return NewConfirmerWithIO(os.Stdin, os.Stdout)
}

// NewConfirmerWithIO creates a Confirmer with custom reader and writer for testing.
func NewConfirmerWithIO(r io.Reader, w io.Writer) *Confirmer {
	return &Confirmer{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Confirm prints the prompt with a [y/N] suffix and reads one line.
// Only "y" or "yes" (case-insensitive) confirms.
func (c *Confirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.writer, "%s [y/N]: ", prompt)

	response, err := c.reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
