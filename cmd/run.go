/*
*/
package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/lmc/pkg/asm"
	"github.com/gmofishsauce/lmc/pkg/sim"
)

var runTrace bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run sourceFile",
	Short: "Assemble and execute an LMC program",
	Long: `Run assembles a Little Man Computer source file and executes
the memory image directly, without generating a program. INP reads
from standard input and OUT writes to standard output. The execution
semantics are identical to those of a program generated by "lmc asm".`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(log.Lmsgprefix)
		log.SetPrefix("lmc: ")

		lines, err := readLines(args[0])
		if err != nil {
			return err
		}
		img, _, err := asm.Assemble(lines)
		if err != nil {
			return err
		}

		m := sim.New(img)
		m.SetTrace(runTrace)
		return m.Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "log every instruction fetch")
}
