package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/dupfinder/internal/report"
)

// PromptReader defines interface for reading user input (for testing)
type PromptReader interface {
	ReadString(delim byte) (string, error)
}

// DefaultPromptReader wraps bufio.Reader
type DefaultPromptReader struct {
	reader *bufio.Reader
}

func (d *DefaultPromptReader) ReadString(delim byte) (string, error) {
	return d.reader.ReadString(delim)
}

// prompter asks the interactive questions and re-asks until an answer is usable.
type prompter struct {
	reader PromptReader
	out    io.Writer
	cyan   *color.Color
	red    *color.Color
}

func newPrompter(reader PromptReader, out io.Writer, colored bool) *prompter {
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)
	if colored {
		cyan.EnableColor()
		red.EnableColor()
	} else {
		cyan.DisableColor()
		red.DisableColor()
	}
	return &prompter{reader: reader, out: out, cyan: cyan, red: red}
}

// readLine reads one trimmed line. A final line without a newline is returned
// as-is; io.EOF is only reported when nothing at all was read.
func (p *prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askRoot asks for the directory to scan. An empty answer (or closed input) means quit.
func (p *prompter) askRoot() (string, error) {
	p.cyan.Fprint(p.out, "Enter the directory to scan (leave empty to quit): ")

	root, err := p.readLine()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return root, nil
}

// askMode asks where the report goes until a valid answer is given.
func (p *prompter) askMode() (report.Mode, error) {
	for {
		p.cyan.Fprint(p.out, "Write the report to (c)onsole, (f)ile or (b)oth? ")

		answer, err := p.readLine()
		if err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		mode, err := report.ParseMode(answer)
		if err == nil {
			return mode, nil
		}
		p.red.Fprintln(p.out, "Invalid choice. Please enter c, f or b.")
	}
}

// askOutputPath asks for the report file until a non-empty path is given.
func (p *prompter) askOutputPath() (string, error) {
	for {
		p.cyan.Fprint(p.out, "Enter the output file path: ")

		path, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if path != "" {
			return path, nil
		}
		p.red.Fprintln(p.out, "Output file path cannot be empty.")
	}
}
