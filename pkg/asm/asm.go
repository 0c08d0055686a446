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

import "fmt"

// Assemble translates source lines into a memory image and a listing
// with one "AA: VVV" entry per encoded word. The label table is built
// by pass 1 and threaded into pass 2 explicitly; nothing is shared
// between calls, so each call is an independent translation.
func Assemble(lines []string) (*Image, []string, error) {
	labels, err := resolveLabels(lines)
	if err != nil {
		return nil, nil, err
	}
	return encode(lines, labels)
}

// resolveLabels is pass 1. The address counter starts at 0 and
// increments once for every line bearing a mnemonic, DAT included, so
// a label names the address its own line occupies. Comment-only and
// blank lines consume no address.
func resolveLabels(lines []string) (map[string]int, error) {
	labels := make(map[string]int)
	address := 0
	for i, raw := range lines {
		ln := parseLine(raw)
		if ln.label != "" {
			if _, dup := labels[ln.label]; dup {
				return nil, errorf(DuplicateLabel, i+1, "duplicate label '%s'", ln.label)
			}
			labels[ln.label] = address
		}
		if ln.mnemonic != "" {
			address++
		}
	}
	return labels, nil
}

// encode is pass 2. It re-walks the lines with a fresh address
// counter, so the invariant that both passes agree on addresses rests
// entirely on sharing parseLine with pass 1.
func encode(lines []string, labels map[string]int) (*Image, []string, error) {
	img := &Image{}
	var listing []string
	address := 0
	for i, raw := range lines {
		ln := parseLine(raw)
		if ln.mnemonic == "" {
			continue
		}
		if address >= MemorySize {
			return nil, nil, errorf(OperandRange, i+1, "program exceeds %d words", MemorySize)
		}

		mn, ok := mnemonics[ln.mnemonic]
		if !ok {
			return nil, nil, errorf(InvalidInstruction, i+1, "invalid instruction '%s'", ln.mnemonic)
		}
		word, err := encodeWord(mn, ln.operand, i+1, labels)
		if err != nil {
			return nil, nil, err
		}

		img.Set(address, word)
		listing = append(listing, fmt.Sprintf("%02d: %03d", address, word))
		address++
	}
	return img, listing, nil
}

// encodeWord produces the memory word for one mnemonic-bearing line.
func encodeWord(mn Mnemonic, operand string, line int, labels map[string]int) (int, error) {
	switch mn {
	case MnDAT:
		value := 0
		if operand != "" {
			v, err := parseOperand(operand, line)
			if err != nil {
				return 0, err
			}
			value = v
		}
		if value < -999 || value > 999 {
			return 0, errorf(OperandRange, line, "DAT value %d out of range (-999 to 999)", value)
		}
		return value, nil

	// The fixed-code instructions ignore any trailing operand token.
	case MnINP:
		return CodeINP, nil
	case MnOUT:
		return CodeOUT, nil
	case MnHLT:
		return CodeHLT, nil

	case MnADD, MnSUB, MnSTA, MnMUL, MnLDA, MnBRA, MnBRZ, MnBRP:
		if operand == "" {
			return 0, errorf(InvalidOperand, line, "missing operand for instruction '%s'", mn)
		}
		addr, ok := labels[operand]
		if !ok {
			v, err := parseOperand(operand, line)
			if err != nil {
				return 0, err
			}
			addr = v
		}
		if addr < 0 || addr >= MemorySize {
			return 0, errorf(OperandRange, line, "operand out of range (0-99)")
		}
		return mn.opcode()*100 + addr, nil
	}

	// Unreachable: the mnemonics map only yields the kinds above.
	return 0, errorf(InvalidInstruction, line, "invalid instruction '%s'", mn)
}
