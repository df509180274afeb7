package counter

import (
	"strconv"
	"strings"
	"unicode"
)

// Declared bounds of the step field. The UI shows them as a hint and uses them
// for nudging; ParseStep does not clamp to them.
const (
	StepFieldMin = 1
	StepFieldMax = 10
)

// ParseStep reads the leading integer of raw, ignoring leading whitespace and
// anything after the digits ("7px" is 7). Input without a leading integer, or
// whose integer is zero, negative or out of range for int, yields DefaultStep.
func ParseStep(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultStep
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 1 {
		return DefaultStep
	}
	return n
}
