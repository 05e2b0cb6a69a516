// Package experience reads "N years" statements from document text.
package experience

import (
	"regexp"
	"strconv"

	"ats/internal/domain"
)

var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*years`)

// Extract returns the largest N among all "N years" / "N+ years" mentions,
// or 0 when there are none. Text is lowercased first.
// Digit runs too large for an int are ignored.
func Extract(text string) int {
	best := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(domain.Normalize(text), -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > best {
			best = n
		}
	}
	return best
}
