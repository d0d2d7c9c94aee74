package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/basiclang/dawbasic/pkg/dawbasic"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Load and run a BASIC program file",
	Long: `Load a file of numbered program lines and RUN it immediately,
without entering the interactive prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	opts, err := engineOptions()
	if err != nil {
		return err
	}
	opts = append(opts, dawbasic.WithOutput(os.Stdout))

	engine, err := dawbasic.New(opts...)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if _, err := engine.ParseLine(scanner.Text(), false); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	engine.Run(-1)
	return nil
}
