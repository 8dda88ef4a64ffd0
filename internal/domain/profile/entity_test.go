package profile

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateResumeTextRuneSafe(t *testing.T) {
	s := strings.Repeat("é", ResumeTextLimit+10)

	got := TruncateResumeText(s)

	if n := utf8.RuneCountInString(got); n != ResumeTextLimit {
		t.Fatalf("expected %d runes, got %d", ResumeTextLimit, n)
	}
	if !utf8.ValidString(got) {
		t.Fatal("truncation produced invalid UTF-8")
	}
}

func TestTruncateResumeTextShortInputUnchanged(t *testing.T) {
	s := "short resume"
	if got := TruncateResumeText(s); got != s {
		t.Fatalf("expected unchanged input, got %q", got)
	}
}
