package pricing

import "strconv"

// FormatRupiah renders whole Rupiah with id-ID thousand grouping,
// e.g. 65000 -> "Rp 65.000".
func FormatRupiah(amount int) string {
	return "Rp " + GroupThousands(amount)
}

// GroupThousands inserts "." separators every three digits.
func GroupThousands(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
