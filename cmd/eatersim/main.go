// Command eatersim drives the nand.Computer simulator: assemble a program
// or load the canonical countdown demo, and run it to completion,
// optionally logging each cycle's observable state.
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ianjray/nand"
	"github.com/ianjray/nand/assembler"
	"github.com/ianjray/nand/isa"
)

func main() {
	defer glog.Flush()

	var programPath string
	var guard int
	var trace bool

	rootCmd := &cobra.Command{
		Use:   "eatersim",
		Short: "Structural NAND-gate simulator for a 16-bit stored-program machine",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a program and run it to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := loadProgram(programPath)
			if err != nil {
				return err
			}
			return runProgram(program, guard, trace)
		},
	}
	runCmd.Flags().StringVar(&programPath, "program", "", "assembly source file to load (default: the built-in countdown demo)")
	runCmd.Flags().IntVar(&guard, "guard", 1<<20, "maximum number of cycles before giving up on a program that never halts")
	runCmd.Flags().BoolVar(&trace, "trace", false, "log PC/A/D/PA after every cycle")

	assembleCmd := &cobra.Command{
		Use:   "assemble <source>",
		Short: "Assemble a source file and print the resulting 16-word program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			for addr, word := range program {
				fmt.Printf("%2d: 0x%04x\n", addr, word)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, assembleCmd)

	if err := rootCmd.Execute(); err != nil {
		glog.Fatalln(err)
		os.Exit(1)
	}
}

// loadProgram assembles path, if given, otherwise returns the built-in
// countdown demo from package isa.
func loadProgram(path string) ([16]uint16, error) {
	var image [16]uint16

	if path == "" {
		return isa.CountdownProgram, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return image, fmt.Errorf("eatersim: %w", err)
	}
	defer f.Close()

	words, err := assembler.AssembleFrom(f)
	if err != nil {
		return image, fmt.Errorf("eatersim: assembling %s: %w", path, err)
	}
	copy(image[:], words)
	return image, nil
}

func runProgram(program [16]uint16, guard int, trace bool) error {
	var clk, halt nand.Signal

	c, err := nand.NewComputer(program[:], &clk, &halt)
	if err != nil {
		return fmt.Errorf("eatersim: %w", err)
	}

	// Settle the combinational network before the first clock edge so the
	// initial observation (cycle 0) reflects the program's first fetch.
	c.Update()
	if trace {
		logObservation(0, c.Observe())
	}

	cycles := 0
	for !c.Halt() {
		if cycles >= guard {
			return fmt.Errorf("eatersim: exceeded guard of %d cycles without halting", guard)
		}
		c.Cycle()
		cycles++
		if trace {
			logObservation(cycles, c.Observe())
		}
	}

	obs := c.Observe()
	glog.Infof("halted after %d cycles: PC:%04x A:%04x D:%04x PA:%04x", cycles, obs.PC, obs.A, obs.D, obs.PA)
	return nil
}

func logObservation(cycle int, obs nand.Observation) {
	glog.Infof("cycle %4d  PC:%04x A:%04x D:%04x PA:%04x halt:%v", cycle, obs.PC, obs.A, obs.D, obs.PA, obs.Halt)
}
