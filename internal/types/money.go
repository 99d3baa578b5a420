// README: Common money value object used across modules.
package types

import (
	"strconv"
	"strings"
)

type Money struct {
	Amount   int64
	Currency string
}

// String renders INR amounts with Indian digit grouping ("₹1,23,456");
// other currencies fall back to "<amount> <code>".
func (m Money) String() string {
	if m.Currency != "" && m.Currency != "INR" {
		return strconv.FormatInt(m.Amount, 10) + " " + m.Currency
	}
	sign := ""
	n := m.Amount
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + "₹" + groupIndian(strconv.FormatInt(n, 10))
}

// groupIndian places the first separator after three digits and every two thereafter.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
