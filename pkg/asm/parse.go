/*
Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package asm

import (
	"strconv"
	"strings"
)

// sourceLine is one parsed line: an optional label, an optional
// mnemonic (upper-cased), and the raw operand token if any. A line
// that is blank or comment-only parses to the zero value.
type sourceLine struct {
	label    string
	mnemonic string
	operand  string
}

// parseLine splits a raw source line. Everything from the first "//"
// to end of line is a comment. The first field is the label when it
// ends in a colon; the next field is the mnemonic; the field after
// that is the operand. Pure function; both passes classify lines
// through it.
func parseLine(raw string) sourceLine {
	if i := strings.Index(raw, "//"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sourceLine{}
	}

	fields := strings.Fields(raw)
	var ln sourceLine
	if strings.HasSuffix(fields[0], ":") {
		ln.label = strings.TrimSuffix(fields[0], ":")
		fields = fields[1:]
	}
	if len(fields) > 0 {
		ln.mnemonic = strings.ToUpper(fields[0])
	}
	if len(fields) > 1 {
		ln.operand = fields[1]
	}
	return ln
}

// parseOperand converts an operand token to an integer. The prefixes
// "0x" and "0b" select hex and binary; anything else is decimal. The
// prefix check is literal, so a sign before the prefix makes the
// token a (failing) decimal.
func parseOperand(token string, line int) (int, error) {
	var value int64
	var err error
	switch {
	case strings.HasPrefix(token, "0x"):
		value, err = strconv.ParseInt(token[2:], 16, 64)
	case strings.HasPrefix(token, "0b"):
		value, err = strconv.ParseInt(token[2:], 2, 64)
	default:
		value, err = strconv.ParseInt(token, 10, 64)
	}
	if err != nil {
		return 0, errorf(InvalidOperand, line, "invalid operand '%s'", token)
	}
	return int(value), nil
}
