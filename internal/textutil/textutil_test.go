package textutil

import (
	"reflect"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"speech-sample", "speech-sample"},
		{"  Dialog: Take 2 ", "Dialog- Take 2"},
		{"a/b\\c", "a-b-c"},
		{"what?\"<>|", "what"},
		{"tab\there", "tabhere"},
		{"..hidden.", "hidden"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasNonLatin(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Ambience 01", false},
		{"Café déjà vu", false},
		{"音声", true},
		{"Запись", true},
		{"take_1 ♪", false},
	}
	for _, tt := range tests {
		if got := HasNonLatin(tt.in); got != tt.want {
			t.Errorf("HasNonLatin(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Room Tone_A1 (STRASSE)")
	want := []string{"room", "tone", "a1", "strasse"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
	if got := Tokenize(" -- "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestTernary(t *testing.T) {
	if Ternary(true, "a", "b") != "a" || Ternary(false, 1, 2) != 2 {
		t.Fatal("Ternary picked the wrong branch")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"", "  ", "Interview "}, "Interview"},
		{[]string{"Clip", "Interview"}, "Clip"},
		{[]string{" ", ""}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := FirstNonEmpty(tt.in...); got != tt.want {
			t.Errorf("FirstNonEmpty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
