package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBarWidth(t *testing.T) {
	t.Parallel()
	for _, rate := range []int{-10, 0, 35, 70, 100, 250} {
		got := Bar(rate, 20)
		if w := lipgloss.Width(got); w != 20 {
			t.Fatalf("Bar(%d) width = %d", rate, w)
		}
	}
	if Bar(50, 0) != "" {
		t.Fatalf("zero width bar should be empty")
	}
}

func TestBarFill(t *testing.T) {
	t.Parallel()
	if got := strings.Count(Bar(50, 10), "█"); got != 5 {
		t.Fatalf("filled cells = %d, want 5", got)
	}
	if got := strings.Count(Bar(100, 10), "░"); got != 0 {
		t.Fatalf("full bar has %d empty cells", got)
	}
}
