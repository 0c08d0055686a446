/*
Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/lmc/pkg/asm"
	"github.com/gmofishsauce/lmc/pkg/gen"
)

var asmOutput string

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "The LMC assembler",
	Long: `Asm translates one Little Man Computer source file into a
100-word memory image. It prints a listing of the encoded words and
writes a standalone Go program that embeds the image and interprets
it with LMC semantics. The generated program depends only on the
standard library and can be started with "go run".

Source lines have the form "[label:] [MNEMONIC [operand]]". Comments
begin with // and extend to end of line. Operands are labels or
decimal, hex (0x) or binary (0b) literals.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return assemble(args[0], asmOutput)
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)
	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", "",
		"path for the generated program (default: source file with .go extension)")
}

func assemble(sourceFile, outputFile string) error {
	lines, err := readLines(sourceFile)
	if err != nil {
		return err
	}

	img, listing, err := asm.Assemble(lines)
	if err != nil {
		return err
	}

	fmt.Println("Machine Code:")
	for _, entry := range listing {
		fmt.Println(entry)
	}

	program, err := gen.Program(img)
	if err != nil {
		return err
	}

	if outputFile == "" {
		outputFile = strings.TrimSuffix(sourceFile, filepath.Ext(sourceFile)) + ".go"
	}
	if err := os.WriteFile(outputFile, []byte(program), 0644); err != nil {
		return err
	}
	fmt.Printf("Program written to %s\n", outputFile)
	return nil
}

func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(content), "\n"), nil
}
