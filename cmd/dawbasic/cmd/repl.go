package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/basiclang/dawbasic/pkg/dawbasic"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive DAW BASIC prompt",
	Long: `Start a read-eval-print loop: each line is either a numbered program
line (stored or removed) or an immediate statement (executed right away).
The loop ends on EOF or when QUIT/EXIT runs.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func engineOptions() ([]dawbasic.Option, error) {
	var opts []dawbasic.Option
	if configPath != "" {
		cfg, err := dawbasic.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", configPath, err)
		}
		opts = append(opts, dawbasic.WithConfig(cfg))
	}
	return opts, nil
}

func runRepl(_ *cobra.Command, _ []string) error {
	opts, err := engineOptions()
	if err != nil {
		return err
	}
	opts = append(opts, dawbasic.WithOutput(os.Stdout))

	engine, err := dawbasic.New(opts...)
	if err != nil {
		return err
	}

	fmt.Println(engine.Banner())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		cont, err := engine.ParseLine(scanner.Text(), true)
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}
	return scanner.Err()
}
