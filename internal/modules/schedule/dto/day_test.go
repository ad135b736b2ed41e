package dto

import "testing"

func TestParseDay(t *testing.T) {
	t.Parallel()
	for raw, want := range map[string]int{"0": 0, "6": 6, "mon": 1, "Wednesday": 3, "SAT": 6} {
		got, err := ParseDay(raw)
		if err != nil || got != want {
			t.Fatalf("ParseDay(%q) = %d, %v; want %d", raw, got, err, want)
		}
	}
	for _, raw := range []string{"7", "mo", "someday", ""} {
		if _, err := ParseDay(raw); err == nil {
			t.Fatalf("ParseDay(%q) should fail", raw)
		}
	}
}
