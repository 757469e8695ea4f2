package core

import (
	"strings"
	"testing"
)

func TestTranscript_AppendAndLen(t *testing.T) {
	tr := NewTranscript()
	if tr.Len() != 0 {
		t.Fatalf("new transcript should be empty, got %d", tr.Len())
	}

	tr.Append("Alice", "hello")
	tr.Append("Bob", "hi there")
	if tr.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", tr.Len())
	}

	entries := tr.Entries()
	if entries[0].Speaker != "Alice" || entries[1].Speaker != "Bob" {
		t.Errorf("entries out of order: %+v", entries)
	}
}

func TestTranscript_FormatEmptySentinel(t *testing.T) {
	tr := NewTranscript()
	got := tr.Format()
	if got != EmptyTranscript {
		t.Errorf("empty transcript should render sentinel, got %q", got)
	}
	if got == "" {
		t.Error("sentinel must not be an empty string")
	}
}

func TestTranscript_FormatOrderAndSeparator(t *testing.T) {
	tr := NewTranscript()
	tr.Append("Alice", "first")
	tr.Append("Bob", "second")
	tr.Append("Alice", "third")

	want := "Alice: first\n\nBob: second\n\nAlice: third"
	if got := tr.Format(); got != want {
		t.Errorf("Format mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestTranscript_AcceptsEmptyMessage(t *testing.T) {
	tr := NewTranscript()
	tr.Append("Alice", "")
	if tr.Len() != 1 {
		t.Fatalf("empty message should still count as an entry, got %d", tr.Len())
	}
	if !strings.Contains(tr.Format(), "Alice: ") {
		t.Errorf("empty message should still render its speaker: %q", tr.Format())
	}
}

func TestTranscript_EntriesAreCopied(t *testing.T) {
	tr := NewTranscript()
	tr.Append("Alice", "hello")

	entries := tr.Entries()
	entries[0].Message = "tampered"
	if tr.Entries()[0].Message != "hello" {
		t.Error("entries slice should be copied on read")
	}
}

func TestTranscript_Clone(t *testing.T) {
	tr := NewTranscript()
	tr.Append("Alice", "hello")

	clone := tr.Clone()
	if clone == tr {
		t.Fatal("Clone should be a different pointer")
	}
	clone.Append("Bob", "hi")
	if tr.Len() != 1 {
		t.Errorf("appending to clone should not affect original, got %d entries", tr.Len())
	}
}
