// Package output writes matching lines to a stream.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/eugenenazirov/minigrep/internal/search"
)

// Printer writes one line per result, newline terminated.
type Printer struct {
	w         io.Writer
	highlight *color.Color
	query     string
	sensitive bool
}

// PrinterOption configures Printer behaviour.
type PrinterOption func(*Printer)

// WithHighlight colours every occurrence of query inside printed lines.
func WithHighlight(query string, caseSensitive bool) PrinterOption {
	return func(p *Printer) {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		p.highlight = c
		p.query = query
		p.sensitive = caseSensitive
	}
}

// NewPrinter constructs a Printer writing to w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes lines in order. Output is buffered and flushed before
// returning; the first write error is returned.
func (p *Printer) Print(lines []string) error {
	bw := bufio.NewWriter(p.w)
	for _, line := range lines {
		if _, err := bw.WriteString(p.render(line)); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func (p *Printer) render(line string) string {
	if p.highlight == nil {
		return line
	}
	spans := search.Locate(p.query, line, p.sensitive)
	if len(spans) == 0 {
		return line
	}

	var out []byte
	prev := 0
	for _, span := range spans {
		out = append(out, line[prev:span.Start]...)
		out = append(out, p.highlight.Sprint(line[span.Start:span.End])...)
		prev = span.End
	}
	out = append(out, line[prev:]...)
	return string(out)
}
