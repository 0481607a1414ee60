package ui

import "testing"

func TestTableAlignsColumns(t *testing.T) {
	tbl := NewTable(3)
	tbl.AddRow("a", "bbbb", "last")
	tbl.AddRow("cccc", "d", "x")

	want := "a     bbbb  last\n" +
		"cccc  d     x\n"
	if got := tbl.String(); got != want {
		t.Fatalf("unexpected table:\n%q\nwant:\n%q", got, want)
	}
}

func TestTableEmpty(t *testing.T) {
	if got := NewTable(2).String(); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestTableIgnoresExtraCells(t *testing.T) {
	tbl := NewTable(1)
	tbl.AddRow("only", "extra")
	if got := tbl.String(); got != "only\n" {
		t.Fatalf("got %q", got)
	}
}

func TestList(t *testing.T) {
	l := NewList()
	l.Add("one")
	l.Add("two")
	if got := l.String(); got != "  • one\n  • two\n" {
		t.Fatalf("got %q", got)
	}
}
