package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a currency amount in integer minor units. All billing math is
// done on this type; conversion to a decimal string happens only at the
// output boundary.
type Cents int64

// MulDiv computes amount * num / den rounded half-up. den must be > 0.
func MulDiv(amount Cents, num, den int64) Cents {
	if den <= 0 {
		return 0
	}
	product := int64(amount) * num
	if product >= 0 {
		return Cents((product + den/2) / den)
	}
	// Round half away from zero for negative products.
	return Cents(-((-product + den/2) / den))
}

// ApplyBasisPoints returns amount * bp / 10000 rounded half-up.
// Tax rates are carried as basis points (825 = 8.25%).
func ApplyBasisPoints(amount Cents, bp int64) Cents {
	return MulDiv(amount, bp, 10000)
}

// ExtractBasisPoints returns the portion of a gross amount that is made up
// of a tax expressed in basis points: amount - amount / (1 + bp/10000).
func ExtractBasisPoints(amount Cents, bp int64) Cents {
	if bp <= 0 {
		return 0
	}
	net := MulDiv(amount, 10000, 10000+bp)
	return amount - net
}

// Format renders cents as a plain decimal string, e.g. 18261 -> "182.61".
func (c Cents) Format() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Parse converts a decimal string like "300", "300.5" or "300.50" into
// cents. More than two fractional digits are rejected.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	v := w*100 + f
	if neg {
		v = -v
	}
	return Cents(v), nil
}
