package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poki/criteria-to-mysql/cmd/criteriasql/internal/cli"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	cfg        *cli.Config
	configPath string

	cfgFile string
	verbose int
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "criteriasql",
		Short: "Compile query criteria into MySQL statements",
		Long: `criteriasql - Compile query criteria into MySQL statements

criteriasql reads a criteria document (filters, orders, limit and offset) and
prints the SELECT statement for the configured table.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}

			var err error
			a.cfg, a.configPath, err = cli.LoadConfig(a.cfgFile)
			if err != nil {
				return cli.ConfigError("loading configuration", err)
			}
			a.debugf(cmd, "config file: %s", resolveString(a.configPath, "(none)"))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: auto-discover criteriasql.yaml)")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase verbosity (can be repeated)")

	rootCmd.AddCommand(newCompileCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// debugf writes a diagnostic line to stderr when --verbose is set.
func (a *app) debugf(cmd *cobra.Command, format string, args ...any) {
	if a.verbose > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
