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

// Package sim executes an assembled memory image directly. Its
// dispatch reproduces the generated interpreter of pkg/gen exactly,
// so a program behaves the same whether run here or compiled from
// the emitted source.
package sim

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/gmofishsauce/lmc/pkg/asm"
)

// Machine is one LMC execution: a 100-word memory copied from the
// image, the accumulator, and the program counter. Input defaults to
// standard input, output to standard output; tests inject both.
type Machine struct {
	memory      [asm.MemorySize]int
	accumulator int
	pc          int
	running     bool

	in          *bufio.Reader
	out         io.Writer
	interactive bool
	trace       bool
}

func New(img *asm.Image) *Machine {
	m := &Machine{
		running:     true,
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
	for addr := 0; addr < asm.MemorySize; addr++ {
		if img.Present(addr) {
			m.memory[addr] = img.At(addr)
		}
	}
	return m
}

// SetInput redirects INP reads. Redirected input is treated as
// non-interactive, so no prompt is printed.
func (m *Machine) SetInput(r io.Reader) {
	m.in = bufio.NewReader(r)
	m.interactive = false
}

func (m *Machine) SetOutput(w io.Writer) {
	m.out = w
}

// SetTrace logs every fetch through the standard logger.
func (m *Machine) SetTrace(trace bool) {
	m.trace = trace
}

func (m *Machine) Running() bool {
	return m.running
}

func (m *Machine) Accumulator() int {
	return m.accumulator
}

func (m *Machine) PC() int {
	return m.pc
}

// Word returns the current content of one memory slot.
func (m *Machine) Word(addr int) int {
	return m.memory[addr]
}

// Step fetches, decodes, and executes one instruction. The program
// counter is incremented before dispatch, so the branch instructions
// overwrite it rather than being overwritten by it.
func (m *Machine) Step() error {
	if !m.running {
		return nil
	}
	if m.pc >= asm.MemorySize {
		m.running = false
		return fmt.Errorf("program counter out of bounds")
	}

	word := m.memory[m.pc]
	opcode := word / 100
	operand := word % 100
	if m.trace {
		log.Printf("pc=%02d word=%03d acc=%d", m.pc, word, m.accumulator)
	}
	m.pc++

	switch opcode {
	case 0: // HLT
		m.running = false
	case 1: // ADD
		m.accumulator = (m.accumulator + m.memory[operand]) % 1000
	case 2: // SUB clamps at 0 instead of wrapping
		m.accumulator -= m.memory[operand]
		if m.accumulator < 0 {
			m.accumulator = 0
		}
	case 3: // STA
		m.memory[operand] = m.accumulator
	case 4: // MUL
		m.accumulator = (m.accumulator * m.memory[operand]) % 1000
	case 5: // LDA
		m.accumulator = m.memory[operand]
	case 6: // BRA
		m.pc = operand
	case 7: // BRZ
		if m.accumulator == 0 {
			m.pc = operand
		}
	case 8: // BRP
		if m.accumulator >= 0 {
			m.pc = operand
		}
	case 9:
		switch operand {
		case 1:
			return m.input()
		case 2:
			fmt.Fprintf(m.out, "Output: %d\n", m.accumulator)
		}
		// any other operand has no effect
	default:
		m.running = false
		return fmt.Errorf("invalid instruction %d at address %d", opcode, m.pc-1)
	}
	return nil
}

// input services INP. The prompt is only printed when standard input
// is a terminal. A value outside 0-999 is discarded with a warning
// and 0 is used instead.
func (m *Machine) input() error {
	if m.interactive {
		fmt.Fprint(m.out, "Enter a value (0-999): ")
	}
	var value int
	if _, err := fmt.Fscan(m.in, &value); err != nil {
		m.running = false
		return fmt.Errorf("reading input: %w", err)
	}
	if value < 0 || value > 999 {
		fmt.Fprintln(m.out, "Invalid input. Using 0.")
		value = 0
	}
	m.accumulator = value
	return nil
}

// Run executes until the program halts or fails.
func (m *Machine) Run() error {
	for m.running {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunLimit executes at most limit steps. It exists for programs that
// never halt; reaching the limit is not an error.
func (m *Machine) RunLimit(limit int) error {
	for i := 0; i < limit && m.running; i++ {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
