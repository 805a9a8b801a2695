package shell

import (
	"bufio"
	"io"
	"strings"
)

// Prompter asks questions on a writer and reads the answers
// from a reader one line at a time.
type Prompter struct {
	reader *bufio.Reader
	output io.Writer
}

// NewPrompter creates a Prompter.
func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(input),
		output: output,
	}
}

// Ask writes the prompt and returns the next line of input with
// the surrounding whitespace removed. io.EOF is only returned
// when there is no more input at all.
func (p *Prompter) Ask(prompt string) (string, error) {
	if _, err := io.WriteString(p.output, prompt); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
