package domain

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exact limit", "hello", 5, "hello"},
		{"ascii cut", "hello world", 5, "hello"},
		{"cjk cut", "武侠小说江湖", 2, "武侠"},
		{"mixed cut", "a武b侠c", 3, "a武b"},
		{"zero limit", "hello", 0, ""},
		{"empty input", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.n); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes_BoundsLongDescriptions(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("江湖", 500)
	got := TruncateRunes(long, ShortDescriptionLength)

	if n := utf8.RuneCountInString(got); n != ShortDescriptionLength {
		t.Fatalf("expected %d runes, got %d", ShortDescriptionLength, n)
	}
	if !utf8.ValidString(got) {
		t.Fatal("truncation must not split a rune")
	}
}
