package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var configPath string

var rootCmd = &cobra.Command{
	Use:   "dawbasic",
	Short: "DAW BASIC interpreter",
	Long: `dawbasic is a line-numbered BASIC interpreter: a case-insensitive,
dynamically typed language with an Immediate/Deferred execution model,
GOTO/GOSUB control flow, and a small builtin function library.

Run it with no arguments to start the REPL, or use "dawbasic run <file>" to
run a script file directly.`,
	Version: Version,
	RunE:    runRepl,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (banner, extra constants)")
}
