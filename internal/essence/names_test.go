package essence

import "testing"

func TestNamerDeduplicates(t *testing.T) {
	var n Namer
	got := []string{n.Name("Dialog"), n.Name("Dialog"), n.Name("dialog"), n.Name(""), n.Name("  ")}
	want := []string{"Dialog", "Dialog_1", "dialog_2", "unknown", "unknown_1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("name %d = %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestNamerForbidNonLatin(t *testing.T) {
	n := Namer{ForbidNonLatin: true, Fallback: "Reel 1"}
	if got := n.Name("台詞"); got != "Reel 1_1" {
		t.Fatalf("expected fallback name, got %q", got)
	}
	if got := n.Name("Музыка"); got != "Reel 1_2" {
		t.Fatalf("expected second fallback name, got %q", got)
	}
	if got := n.Name("Café"); got != "Café" {
		t.Fatalf("expected Latin name kept, got %q", got)
	}

	plain := Namer{}
	if got := plain.Name("台詞"); got != "台詞" {
		t.Fatalf("expected name kept without the option, got %q", got)
	}
}
