package streams

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInput_dashSelectsStandardInput(t *testing.T) {
	for _, name := range []string{"", "-"} {
		r, desc, err := Input(name)
		if err != nil {
			t.Fatalf("Input(%q): %v", name, err)
		}
		if desc != "standard input" {
			t.Errorf("Input(%q) desc = %q, want %q", name, desc, "standard input")
		}
		if err := r.Close(); err != nil {
			t.Errorf("Close after Input(%q): %v", name, err)
		}
	}
}

func TestInput_opensNamedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, desc, err := Input(path)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	defer r.Close()
	if !strings.Contains(desc, "in.txt") {
		t.Errorf("desc = %q, want it to name the file", desc)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("read %q, want %q", data, "hello\n")
	}
}

func TestInput_missingFileFails(t *testing.T) {
	dir := t.TempDir()
	_, _, err := Input(filepath.Join(dir, "nope.txt"))
	if err == nil {
		t.Fatal("Input(missing): want error, got nil")
	}
}

func TestOutput_dashSelectsStandardOutput(t *testing.T) {
	for _, name := range []string{"", "-"} {
		w, desc, err := Output(name)
		if err != nil {
			t.Fatalf("Output(%q): %v", name, err)
		}
		if desc != "standard output" {
			t.Errorf("Output(%q) desc = %q, want %q", name, desc, "standard output")
		}
		if err := w.Close(); err != nil {
			t.Errorf("Close after Output(%q): %v", name, err)
		}
	}
}

func TestOutput_truncatesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(path, []byte("old old old"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, _, err := Output(path)
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if _, err := io.WriteString(w, "new"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("file = %q, want %q", data, "new")
	}
}

func TestTrimEOL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\n", "a"},
		{"a\r\n", "a"},
		{"a", "a"},
		{"", ""},
		{"a\n\n", "a\n"},
		{"a\r\n\r\n", "a\r\n"},
		{"\r\n", ""},
		// A carriage return is only stripped as part of "\r\n".
		{"a\r", "a\r"},
		{"a\n\r", "a\n\r"},
		{"\r", "\r"},
	}
	for _, tt := range tests {
		if got := TrimEOL(tt.in); got != tt.want {
			t.Errorf("TrimEOL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteLines_appendsNewlinePerLine(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"/a/b.txt", "/a/c.txt"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	want := "/a/b.txt\n/a/c.txt\n"
	if buf.String() != want {
		t.Errorf("WriteLines wrote %q, want %q", buf.String(), want)
	}
}

func TestWriteLines_emptyWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, nil); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteLines wrote %q for no lines, want empty", buf.String())
	}
}
