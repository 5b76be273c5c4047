package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrintWritesLinesInOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewPrinter(&buf).Print([]string{"Rust:", "", "Trust me."}); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}

	if got, want := buf.String(), "Rust:\n\nTrust me.\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPrintNoLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewPrinter(&buf).Print(nil); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPrintHighlightsMatches(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf, WithHighlight("rust", false))
	if err := p.Print([]string{"Trust Rust", "nothing here"}); err != nil {
		t.Fatalf("Print returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %q", lines)
	}
	if !strings.Contains(lines[0], "\x1b[") {
		t.Fatalf("expected ANSI escape in highlighted line, got %q", lines[0])
	}
	if stripANSI(lines[0]) != "Trust Rust" {
		t.Fatalf("expected original text around highlights, got %q", stripANSI(lines[0]))
	}
	if lines[1] != "nothing here" {
		t.Fatalf("expected line without match to be unchanged, got %q", lines[1])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPrintReturnsWriteError(t *testing.T) {
	t.Parallel()

	if err := NewPrinter(failingWriter{}).Print([]string{"line"}); err == nil {
		t.Fatalf("expected write error")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
