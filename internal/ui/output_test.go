package ui

import "testing"

func TestStatusMessages(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Success("done"), "✓ done"},
		{Successf("moved %d", 3), "✓ moved 3"},
		{Error("failed"), "✗ failed"},
		{Warningf("%s", "careful"), "⚠ careful"},
		{Info("fyi"), "ℹ fyi"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestRecords(t *testing.T) {
	if got := Records(1); got != "1 record" {
		t.Errorf("Records(1) = %q", got)
	}
	if got := Records(0); got != "0 records" {
		t.Errorf("Records(0) = %q", got)
	}
	if got := Records(5); got != "5 records" {
		t.Errorf("Records(5) = %q", got)
	}
}
