// Package prompt implements the line-oriented interactive console.
//
// The device resolver and the filter phase ask yes/no questions and
// numbered-selection questions on a plain text channel. Keeping the
// channel as io.Reader/io.Writer pairs means prompts still work when
// the process has been re-executed under sudo.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxAttempts bounds how often YesNo re-asks after unparseable input.
const maxAttempts = 3

// Prompter reads answers from In and writes questions to Out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// YesNo asks query and returns the answer. Unparseable input is
// re-asked up to maxAttempts times; running out of attempts or input
// counts as no.
func (p *Prompter) YesNo(query string) bool {
	for i := 0; i < maxAttempts; i++ {
		fmt.Fprintf(p.out, "%s [y/n]: ", query)

		line, ok := p.readLine()
		if !ok {
			return false
		}

		answer, err := parseBool(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please answer with y/n")
			continue
		}
		return answer
	}
	return false
}

// SelectIndex asks query and reads one integer answer.
func (p *Prompter) SelectIndex(query string) (int, error) {
	fmt.Fprintf(p.out, "%s: ", query)

	line, ok := p.readLine()
	if !ok {
		return 0, io.EOF
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q", strings.TrimSpace(line))
	}
	return n, nil
}

// readLine reads one line of input, reporting false on EOF or error.
func (p *Prompter) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// parseBool interprets the usual spellings of yes and no.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a yes/no answer: %q", s)
}
