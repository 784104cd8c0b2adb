package validation

import (
	"strconv"
	"strings"
)

// ParseInt reads an integer the way form inputs are read: surrounding space
// is ignored, an optional sign is accepted, and parsing stops at the first
// non-digit. "12abc" yields 12; "abc" and "" are rejected.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
