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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine1(t *testing.T) {
	ln := parseLine("loop: lda count // reload the counter")
	assert.Equal(t, "loop", ln.label)
	assert.Equal(t, "LDA", ln.mnemonic)
	assert.Equal(t, "count", ln.operand)
}

func TestParseLine2(t *testing.T) {
	ln := parseLine("   ADD 12  ")
	assert.Equal(t, "", ln.label)
	assert.Equal(t, "ADD", ln.mnemonic)
	assert.Equal(t, "12", ln.operand)
}

func TestParseLineEmpty(t *testing.T) {
	assert.Equal(t, sourceLine{}, parseLine(""))
	assert.Equal(t, sourceLine{}, parseLine(" \t "))
	assert.Equal(t, sourceLine{}, parseLine("// comment only"))
	assert.Equal(t, sourceLine{}, parseLine("   // indented comment"))
}

func TestParseLineLabelOnly(t *testing.T) {
	ln := parseLine("start:")
	assert.Equal(t, "start", ln.label)
	assert.Equal(t, "", ln.mnemonic)
	assert.Equal(t, "", ln.operand)
}

func TestParseLineNoOperand(t *testing.T) {
	ln := parseLine("hlt")
	assert.Equal(t, "", ln.label)
	assert.Equal(t, "HLT", ln.mnemonic)
	assert.Equal(t, "", ln.operand)
}

func TestParseLineCommentCutsOperand(t *testing.T) {
	ln := parseLine("BRA //loop")
	assert.Equal(t, "BRA", ln.mnemonic)
	assert.Equal(t, "", ln.operand)
}

func TestParseOperandDecimal(t *testing.T) {
	v, err := parseOperand("42", 1)
	assert.Nil(t, err)
	assert.Equal(t, 42, v)

	v, err = parseOperand("-7", 1)
	assert.Nil(t, err)
	assert.Equal(t, -7, v)
}

func TestParseOperandHex(t *testing.T) {
	v, err := parseOperand("0x1F", 1)
	assert.Nil(t, err)
	assert.Equal(t, 31, v)
}

func TestParseOperandBinary(t *testing.T) {
	v, err := parseOperand("0b101", 1)
	assert.Nil(t, err)
	assert.Equal(t, 5, v)
}

func TestParseOperandBad(t *testing.T) {
	for _, tok := range []string{"zzz", "0xG1", "0b12", "1.5", "", "-0x5"} {
		_, err := parseOperand(tok, 9)
		assert.NotNil(t, err, "token %q", tok)
		asmErr, ok := err.(*Error)
		assert.True(t, ok)
		assert.Equal(t, InvalidOperand, asmErr.Kind)
		assert.Equal(t, 9, asmErr.Line)
	}
}
