// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"strconv"
	"strings"
)

// parseUserID reads the leading integer of a path segment: optional
// whitespace, an optional sign and digits. Digits are decimal unless the
// number starts with "0x" or "0X", in which case they are hexadecimal.
// Anything after the digits is ignored, so "2abc" is 2 and "1.9" is 1.
// A segment without leading digits yields [ErrInvalidUserID]. Values beyond
// int64 saturate; no record can carry them anyway.
func parseUserID(raw string) (int64, error) {
	s := strings.TrimLeft(raw, " \t\n\v\f\r")

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit, s = 16, isHexDigit, s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, ErrInvalidUserID
	}

	id, err := strconv.ParseInt(sign+s[:end], base, 64)
	if err != nil {
		if sign == "-" {
			return math.MinInt64, nil
		}
		return math.MaxInt64, nil
	}

	return id, nil
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
