package pricing

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPrice signals that free-form price text did not contain a
// positive Rupiah amount. Callers withhold the promo display instead of
// treating it as fatal.
var ErrInvalidPrice = errors.New("invalid price")

var whitespaceRe = regexp.MustCompile(`\s+`)

// ParsePrice turns loosely formatted Indonesian price text into whole
// Rupiah. Accepted shapes include "65000", "65.000", "65k", "65rb",
// "Rp65.000" and "rp 65 ribu". The steps run in order: whitespace removal,
// leading "rp" strip, "ribu" -> "rb", trailing "rb" -> "000", trailing "k"
// -> "000", grouping punctuation strip, base-10 parse.
func ParsePrice(raw string) (int, error) {
	if raw == "" {
		return 0, ErrInvalidPrice
	}
	s := strings.ToLower(strings.TrimSpace(raw))
	s = whitespaceRe.ReplaceAllString(s, "")
	s = strings.TrimPrefix(s, "rp")
	s = strings.ReplaceAll(s, "ribu", "rb")
	if strings.HasSuffix(s, "rb") {
		s = strings.TrimSuffix(s, "rb") + "000"
	}
	if strings.HasSuffix(s, "k") {
		s = strings.TrimSuffix(s, "k") + "000"
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidPrice
	}
	return n, nil
}
