// Package period parses the YYYY-MM month labels and YYYY-Qn quarter
// labels used as aggregation keys throughout the system.
package period

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrBadMonth   = errors.New("month label must be YYYY-MM")
	ErrBadQuarter = errors.New("quarter label must be YYYY-Qn")
)

var (
	monthRe   = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)
	quarterRe = regexp.MustCompile(`^(\d{4})-Q([1-4])$`)
)

func ValidateMonth(label string) error {
	if !monthRe.MatchString(label) {
		return ErrBadMonth
	}
	return nil
}

func ValidateQuarter(label string) error {
	if !quarterRe.MatchString(label) {
		return ErrBadQuarter
	}
	return nil
}

// QuarterMonths decomposes a quarter label into its three consecutive
// calendar months: quarter n covers months 3(n-1)+1 .. 3(n-1)+3.
func QuarterMonths(label string) ([]string, error) {
	m := quarterRe.FindStringSubmatch(label)
	if m == nil {
		return nil, ErrBadQuarter
	}
	year := m[1]
	n, _ := strconv.Atoi(m[2])

	first := 3*(n-1) + 1
	months := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		months = append(months, fmt.Sprintf("%s-%02d", year, first+i))
	}
	return months, nil
}
