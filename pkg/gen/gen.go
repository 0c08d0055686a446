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

// Package gen emits a standalone Go program that embeds an assembled
// memory image and interprets it with LMC semantics. The program is a
// fixed template plus one initializer per set memory slot; unset
// slots stay at the zero value of the generated array.
package gen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gmofishsauce/lmc/pkg/asm"
)

// The generated interpreter. Its dispatch must match pkg/sim exactly:
// pc is incremented before dispatch so the branches overwrite it, ADD
// and MUL wrap mod 1000, SUB clamps at 0, and opcode 9 with an
// operand other than 1 or 2 does nothing.
const programTemplate = `package main

import (
	"fmt"
	"os"
)

func main() {
	accumulator := 0
	memory := [100]int{}
	pc := 0
	running := true

{{range .Initializers}}	{{.}}
{{end}}
	for running {
		if pc >= 100 {
			fmt.Fprintln(os.Stderr, "error: program counter out of bounds")
			os.Exit(1)
		}
		opcode := memory[pc] / 100
		operand := memory[pc] % 100
		pc++

		switch opcode {
		case 0: // HLT
			running = false
		case 1: // ADD
			accumulator = (accumulator + memory[operand]) % 1000
		case 2: // SUB
			accumulator -= memory[operand]
			if accumulator < 0 {
				accumulator = 0
			}
		case 3: // STA
			memory[operand] = accumulator
		case 4: // MUL
			accumulator = (accumulator * memory[operand]) % 1000
		case 5: // LDA
			accumulator = memory[operand]
		case 6: // BRA
			pc = operand
		case 7: // BRZ
			if accumulator == 0 {
				pc = operand
			}
		case 8: // BRP
			if accumulator >= 0 {
				pc = operand
			}
		case 9: // INP and OUT
			if operand == 1 {
				fmt.Print("Enter a value (0-999): ")
				value := 0
				if _, err := fmt.Scan(&value); err != nil {
					fmt.Fprintln(os.Stderr, "error reading input:", err)
					os.Exit(1)
				}
				if value < 0 || value > 999 {
					fmt.Println("Invalid input. Using 0.")
					value = 0
				}
				accumulator = value
			} else if operand == 2 {
				fmt.Println("Output:", accumulator)
			}
		default:
			fmt.Fprintf(os.Stderr, "error: invalid instruction %d at address %d\n", opcode, pc-1)
			os.Exit(1)
		}
	}
}
`

var program = template.Must(template.New("program").Parse(programTemplate))

// Initializers renders the assignment statements for every slot the
// image sets, in address order. Exposed so tests can pin the image
// fragment without asserting on the surrounding boilerplate.
func Initializers(img *asm.Image) []string {
	var stmts []string
	for addr := 0; addr < asm.MemorySize; addr++ {
		if img.Present(addr) {
			stmts = append(stmts, fmt.Sprintf("memory[%d] = %d", addr, img.At(addr)))
		}
	}
	return stmts
}

// Program renders the complete standalone interpreter for the image.
func Program(img *asm.Image) (string, error) {
	var b strings.Builder
	data := struct{ Initializers []string }{Initializers(img)}
	if err := program.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
