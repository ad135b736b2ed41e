package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSuggest(t *testing.T) {
	t.Parallel()
	if got := Suggest(""); len(got) != 5 {
		t.Fatalf("empty prefix hints = %d, want 5", len(got))
	}
	got := Suggest("st")
	if len(got) != 2 || got[0] != "start <subject-id>" || got[1] != "stop [focus 1-5] [notes]" {
		t.Fatalf("Suggest(st) = %v", got)
	}
	if got := Suggest("stop 4 good"); len(got) != 1 {
		t.Fatalf("typed arguments should keep the stop hint, got %v", got)
	}
	if got := Suggest("zzz"); len(got) != 0 {
		t.Fatalf("unexpected hints %v", got)
	}
}

func TestPaletteSubmit(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	if !p.Visible() {
		t.Fatalf("palette should be visible after Open")
	}
	for _, r := range "pause" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("palette should close on enter")
	}
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "pause" {
		t.Fatalf("submit msg = %#v", cmd())
	}
}

func TestPaletteCancel(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("palette should close on esc")
	}
	if _, ok := cmd().(PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel msg")
	}
}
