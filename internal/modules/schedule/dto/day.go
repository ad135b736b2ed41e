package dto

import (
	"fmt"
	"strings"
	"time"
)

// ParseDay accepts a day number (0 is Sunday) or an English day name such as
// "mon" or "Monday".
func ParseDay(raw string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if len(v) == 1 && v[0] >= '0' && v[0] <= '6' {
		return int(v[0] - '0'), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || (len(v) >= 3 && strings.HasPrefix(name, v)) {
			return int(d), nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", raw)
}
