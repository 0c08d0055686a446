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

// Package asm translates Little Man Computer source into a memory
// image of 3-digit words plus a human-readable listing. Translation
// is two passes over the source lines: pass 1 assigns an address to
// every label, pass 2 encodes each instruction using the completed
// label table. Both passes classify lines with the same parser, so
// the addresses they assign cannot diverge.
//
// The package does no I/O. Callers hand in source lines and receive
// the image, the listing, or the first error.
package asm

import "fmt"

// MemorySize is the fixed LMC address space: 100 words, addresses 0-99.
const MemorySize = 100

// Mnemonic kinds
type Mnemonic int

const (
	MnADD Mnemonic = iota
	MnSUB
	MnSTA
	MnMUL
	MnLDA
	MnBRA
	MnBRZ
	MnBRP
	MnINP
	MnOUT
	MnHLT
	MnDAT
)

var mnemonicToString = []string{
	"ADD",
	"SUB",
	"STA",
	"MUL",
	"LDA",
	"BRA",
	"BRZ",
	"BRP",
	"INP",
	"OUT",
	"HLT",
	"DAT",
}

func (m Mnemonic) String() string {
	return mnemonicToString[m]
}

var mnemonics = map[string]Mnemonic{
	"ADD": MnADD,
	"SUB": MnSUB,
	"STA": MnSTA,
	"MUL": MnMUL,
	"LDA": MnLDA,
	"BRA": MnBRA,
	"BRZ": MnBRZ,
	"BRP": MnBRP,
	"INP": MnINP,
	"OUT": MnOUT,
	"HLT": MnHLT,
	"DAT": MnDAT,
}

// opcode returns the opcode digit combined with a two-digit operand
// address to form an instruction word. Only the eight addressed
// instructions have one.
func (m Mnemonic) opcode() int {
	switch m {
	case MnADD:
		return 1
	case MnSUB:
		return 2
	case MnSTA:
		return 3
	case MnMUL:
		return 4
	case MnLDA:
		return 5
	case MnBRA:
		return 6
	case MnBRZ:
		return 7
	case MnBRP:
		return 8
	}
	return -1
}

// Fixed instruction codes. INP and OUT share opcode digit 9 and are
// distinguished by their operand; HLT is the all-zero word.
const (
	CodeINP = 901
	CodeOUT = 902
	CodeHLT = 0
)

// Error kinds
type ErrorKind int

const (
	InvalidInstruction ErrorKind = iota
	DuplicateLabel
	OperandRange
	InvalidOperand
)

var kindToString = []string{
	"invalid instruction",
	"duplicate label",
	"operand range",
	"invalid operand",
}

func (k ErrorKind) String() string {
	return kindToString[k]
}

// Error is the single error type produced by translation. Every error
// carries the 1-based source line it arose on. The first error aborts
// both passes; there is no partial output and no error accumulation.
type Error struct {
	Kind    ErrorKind
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d", e.Message, e.Line)
}

func errorf(kind ErrorKind, line int, format string, args ...interface{}) *Error {
	return &Error{kind, line, fmt.Sprintf(format, args...)}
}

// Image is the 100-word memory image built by pass 2. A slot is unset
// until something is encoded at its address; unset slots default to 0
// in generated programs. An Image is created fresh for each Assemble
// call and never mutated afterward.
type Image struct {
	words [MemorySize]int
	used  [MemorySize]bool
}

// Set stores word at addr and marks the slot as holding a value.
func (img *Image) Set(addr, word int) {
	img.words[addr] = word
	img.used[addr] = true
}

// At returns the word at addr, 0 if the slot is unset.
func (img *Image) At(addr int) int {
	return img.words[addr]
}

// Present reports whether anything was encoded at addr.
func (img *Image) Present(addr int) bool {
	return img.used[addr]
}
