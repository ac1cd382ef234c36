package utils

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseHexColor parses "#rrggbb" (or "rrggbb", "0xrrggbb") into 0xRRGGBB
func ParseHexColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(hex) != 6 {
		return 0, errors.Errorf("[ParseHexColor] color %q must have 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "[ParseHexColor] invalid color: %+v", s)
	}
	return uint32(v), nil
}
