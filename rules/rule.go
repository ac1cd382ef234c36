package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Rule is an outer-totalistic birth/survival rule over the 8-cell neighborhood
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is B3/S23
var Conway = Rule{
	Birth:   [9]bool{3: true},
	Survive: [9]bool{2: true, 3: true},
}

// Next reports whether a cell with the given live-neighbor count is alive next generation
func (r Rule) Next(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String renders the rule in B/S notation
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// ParseRule parses "B3/S23" or the older survival-first "23/3" notation
func ParseRule(s string) (Rule, error) {
	var (
		r     Rule
		parts = strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	)
	if len(parts) != 2 {
		return r, errors.Errorf("[ParseRule] rule %q must have two parts separated by '/'", s)
	}

	birth, survive := parts[0], parts[1]
	switch {
	case strings.HasPrefix(birth, "B") && strings.HasPrefix(survive, "S"):
		birth, survive = birth[1:], survive[1:]
	case strings.HasPrefix(birth, "S") && strings.HasPrefix(survive, "B"):
		birth, survive = survive[1:], birth[1:]
	default:
		// survival/birth digits without letters
		birth, survive = survive, birth
	}

	if err := fillCounts(&r.Birth, birth); err != nil {
		return r, errors.Wrapf(err, "[ParseRule] invalid birth counts in %q", s)
	}
	if err := fillCounts(&r.Survive, survive); err != nil {
		return r, errors.Wrapf(err, "[ParseRule] invalid survival counts in %q", s)
	}
	return r, nil
}

func fillCounts(dst *[9]bool, digits string) error {
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return errors.Errorf("unexpected %q", ch)
		}
		dst[ch-'0'] = true
	}
	return nil
}
